package apimodels

import apperror "workvera-backend/lib/utils/app-error"

type Response struct {
	Status  string      `json:"status"`            // fail/success
	Code    string      `json:"code,omitempty"`    // stable error classification
	Message string      `json:"message,omitempty"` // error message
	Data    interface{} `json:"data,omitempty"`
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` // total rows matching the filter
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewCodedError(code, message string) Response {
	return Response{
		Status:  "fail",
		Code:    code,
		Message: message,
	}
}

// NewAppError maps a classified error to its HTTP status and envelope; internal causes stay hidden behind fallback.
func NewAppError(err error, fallback string) (status int, resp Response) {
	kind := apperror.KindOf(err)
	return kind.HTTPStatus(), NewCodedError(kind.Code(), apperror.PublicMessage(err, fallback))
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // rows per page
	Page  int `json:"page" query:"page"`   // 1,2,3..
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
