package initchecker

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckInit takes name/value pairs and panics listing every dependency that is still nil.
func CheckInit(pairs ...any) {
	if err := Missing(pairs...); err != nil {
		panic(err.Error())
	}
}

func Missing(pairs ...any) error {
	if len(pairs)%2 != 0 {
		return fmt.Errorf("CheckInit: odd number of arguments")
	}
	var missing []string
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return fmt.Errorf("CheckInit: first argument of pair must be string")
		}
		if isNil(pairs[i+1]) {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		return fmt.Errorf("dependencies not initialized: %s", strings.Join(missing, ", "))
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
