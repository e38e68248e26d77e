package handlers

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var errInvalidID = fiber.NewError(fiber.StatusBadRequest, "Invalid ID")

// ErrorHandler renders every error returned by a handler as
// {"error": true, "code": ..., "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"code":    code,
		"message": message,
	})
}

// serverError logs the cause and hides it behind a generic message.
func serverError(c *fiber.Ctx, err error, message string) error {
	log.Printf("🔥 %s: %v | Path: %s | Method: %s", message, err, c.Path(), c.Method())
	return fiber.NewError(fiber.StatusInternalServerError, message)
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Field() + " is invalid"
	}
	return "Invalid request body"
}
