package http

import (
	"truckrental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathID(c echo.Context) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, c.Param("id"), &id)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// pathEmail unescapes the :email segment, so "a%40b.com" arrives as "a@b.com".
func pathEmail(c echo.Context) (string, error) {
	var email string
	err := runtime.BindStyledParameterWithLocation("simple", false, "email", runtime.ParamLocationPath, c.Param("email"), &email)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return email, nil
}
