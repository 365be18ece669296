package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their wire name so the
// error map keys match the request body.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// bindRequest decodes JSON, urlencoded or multipart bodies into req. Fields
// already set on req survive when the body omits them, which is how PATCH
// keeps stored values.
func bindRequest(c *gin.Context, req any) error {
	err := c.ShouldBind(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := apperror.FieldErrors{}
		for _, fe := range verrs {
			fields.Add(fe.Field(), validationMessage(fe))
		}
		return fields.Err()
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return apperror.NewInvalidInput("A valid number is required.", err)
	}
	return apperror.NewInvalidInput("malformed request body", err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
}

// isPartial reports whether the request is a PATCH.
func isPartial(c *gin.Context) bool {
	return c.Request.Method == http.MethodPatch
}

// parseID turns the :id path segment into a record id. Anything that is not a
// positive integer cannot match a record and reports not found.
func parseID(c *gin.Context, resource string) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFound(resource, raw)
	}
	return id, nil
}

// formFile returns the uploaded file for field, or nil when the request is
// not multipart or carries no such file. The caller closes it.
func formFile(c *gin.Context, field string) (io.ReadCloser, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return nil, nil
	}
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperror.NewInvalidInput(fmt.Sprintf("'%s' could not be read", field), err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.NewInternal("failed to open file", err)
	}
	return file, nil
}

// formValue returns a text field of a form body. Fields that double as file
// inputs are excluded from binding, since gin refuses to put a file part into
// a string, and are read here instead. ok is false for JSON bodies and when
// the form does not carry the field as text.
func formValue(c *gin.Context, field string) (string, bool) {
	switch c.ContentType() {
	case binding.MIMEMultipartPOSTForm, binding.MIMEPOSTForm:
		return c.GetPostForm(field)
	}
	return "", false
}

// blankToNil maps an empty optional string to null, matching what HTML forms
// send for cleared inputs.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
