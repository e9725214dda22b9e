package http

import (
	"reflect"

	"marketing-hub/internal/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// The validator walks into struct-typed fields instead of treating them as
// values, so `binding:"required"` on an entity.Date would never fire without
// this registration. Mapping a zero Date to nil makes `required` see a
// missing value.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(entity.Date); ok {
			if d.IsZero() {
				return nil
			}
			return d.String()
		}
		return nil
	}, entity.Date{})
}
