package apiv1

import (
	"workvera-backend/controllers"
	communityhandler "workvera-backend/lib/community"
	apimodels "workvera-backend/models/api"
	communityapimodels "workvera-backend/models/api/community"

	"github.com/gofiber/fiber/v2"
)

type communityApiController struct {
	controllers.BaseAPIController
}

func InitCommunityApiRouters(app *fiber.App) {
	controller := communityApiController{}
	app.Route("posts", func(router fiber.Router) {
		router.Get("", controller.listPosts)
		router.Post("", controller.createPost)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getPost)
			idRoute.Put("", controller.updatePost)
			idRoute.Patch("", controller.patchPost)
			idRoute.Delete("", controller.deletePost)
			idRoute.Get("comments", controller.listComments)
			idRoute.Post("comments", controller.createComment)
			idRoute.Post("comment", controller.createComment)
		})
	})
	app.Route("comments", func(router fiber.Router) {
		router.Get(":id", controller.getComment)
		router.Put(":id", controller.updateComment)
		router.Patch(":id", controller.updateComment)
		router.Delete(":id", controller.deleteComment)
	})
}

// @Summary Posts
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page		query		int	false	"page"
// @Param   limit		query		int	false	"page size"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]communityapimodels.PostView}
// @router /api/v1/posts [get]
func (c *communityApiController) listPosts(ctx *fiber.Ctx) error {
	var paging apimodels.Pagination
	if err := c.QueryParser(ctx, &paging); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list posts")
	}
	list, rowCount, err := communityhandler.Instance.ListPosts(paging)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list posts")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Create a post
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		communityapimodels.PostData	true	"request body"
// @Success 201 {object} apimodels.Response{data=communityapimodels.PostView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/posts [post]
func (c *communityApiController) createPost(ctx *fiber.Ctx) error {
	var payload communityapimodels.PostData
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create post")
	}
	resp, err := communityhandler.Instance.CreatePost(c.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create post")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Post
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=communityapimodels.PostView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/posts/{id} [get]
func (c *communityApiController) getPost(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load post")
	}
	resp, err := communityhandler.Instance.GetPost(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load post")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Replace a post
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		communityapimodels.PostData	true	"request body"
// @Success 200 {object} apimodels.Response{data=communityapimodels.PostView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/posts/{id} [put]
func (c *communityApiController) updatePost(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update post")
	}
	var payload communityapimodels.PostData
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update post")
	}
	resp, err := communityhandler.Instance.UpdatePost(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update post")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Update post fields
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		communityapimodels.PostPatch	true	"request body"
// @Success 200 {object} apimodels.Response{data=communityapimodels.PostView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/posts/{id} [patch]
func (c *communityApiController) patchPost(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update post")
	}
	var payload communityapimodels.PostPatch
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update post")
	}
	resp, err := communityhandler.Instance.PatchPost(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update post")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Delete a post
// @Tags Community
// @Description Comments of the post are removed with it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/posts/{id} [delete]
func (c *communityApiController) deletePost(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete post")
	}
	if err = communityhandler.Instance.DeletePost(c.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete post")
	}
	return c.SendOK(ctx, nil)
}

// @Summary Post comments
// @Tags Community
// @Description Top level comments with nested replies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "post ID"
// @Success 200 {object} apimodels.Response{data=[]communityapimodels.CommentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/posts/{id}/comments [get]
func (c *communityApiController) listComments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list comments")
	}
	list, err := communityhandler.Instance.ListComments(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list comments")
	}
	return c.SendOK(ctx, list)
}

// @Summary Comment a post
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "post ID"
// @Param	body				body		communityapimodels.CommentData	true	"request body"
// @Success 201 {object} apimodels.Response{data=communityapimodels.CommentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/posts/{id}/comments [post]
func (c *communityApiController) createComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create comment")
	}
	var payload communityapimodels.CommentData
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create comment")
	}
	resp, err := communityhandler.Instance.CreateComment(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create comment")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Comment
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=communityapimodels.CommentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/comments/{id} [get]
func (c *communityApiController) getComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load comment")
	}
	resp, err := communityhandler.Instance.GetComment(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load comment")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Update a comment
// @Tags Community
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		communityapimodels.CommentUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=communityapimodels.CommentView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/comments/{id} [put]
func (c *communityApiController) updateComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update comment")
	}
	var payload communityapimodels.CommentUpdate
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update comment")
	}
	resp, err := communityhandler.Instance.UpdateComment(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update comment")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Delete a comment
// @Tags Community
// @Description Replies are removed with the comment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/comments/{id} [delete]
func (c *communityApiController) deleteComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete comment")
	}
	if err = communityhandler.Instance.DeleteComment(c.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete comment")
	}
	return c.SendOK(ctx, nil)
}
