package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"ruyatech/internal/models"
)

// ValidationErrors wraps the validator's ValidationErrors
type ValidationErrors []playgroundvalidator.FieldError

// CustomValidator wraps go-playground/validator
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() echo.Validator {
	v := playgroundvalidator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("member_role", validateMemberRole); err != nil {
		return nil
	}
	if err := v.RegisterValidation("member_status", validateMemberStatus); err != nil {
		return nil
	}
	if err := v.RegisterValidation("ad_status", validateAdStatus); err != nil {
		return nil
	}
	if err := v.RegisterValidation("post_status", validatePostStatus); err != nil {
		return nil
	}

	return &CustomValidator{validator: v}
}

func validateMemberRole(fl playgroundvalidator.FieldLevel) bool {
	return models.IsValidMemberRole(models.MemberRole(fl.Field().String()))
}

func validateMemberStatus(fl playgroundvalidator.FieldLevel) bool {
	return models.MemberStatus(fl.Field().String()).Known()
}

func validateAdStatus(fl playgroundvalidator.FieldLevel) bool {
	return models.AdStatus(fl.Field().String()).Known()
}

func validatePostStatus(fl playgroundvalidator.FieldLevel) bool {
	return models.PostStatus(fl.Field().String()).Known()
}

// Validate implements echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrors playgroundvalidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationErrors(validationErrors)
		}
		return err
	}
	return nil
}

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	var fields []string
	for _, err := range ve {
		fields = append(fields, err.Field())
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// LoginRequest starts a console session against the backend.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterRequest is the wizard submission. The role decides which bio
// fields apply; the rest are ignored.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Role     string `json:"role" form:"role" validate:"required,member_role"`
	City     string `json:"city" form:"city"`
	Country  string `json:"country" form:"country"`

	// professional
	Title           string `json:"title" form:"title"`
	YearsExperience int    `json:"years_experience" form:"years_experience" validate:"omitempty,min=0"`
	Skills          string `json:"skills" form:"skills"`
	Summary         string `json:"summary" form:"summary"`

	// student
	Institution    string `json:"institution" form:"institution"`
	Degree         string `json:"degree" form:"degree"`
	FieldOfStudy   string `json:"field_of_study" form:"field_of_study"`
	GraduationYear int    `json:"graduation_year" form:"graduation_year" validate:"omitempty,min=1900"`
	Interests      string `json:"interests" form:"interests"`

	// company
	LegalName  string `json:"legal_name" form:"legal_name"`
	Industries string `json:"industries" form:"industries"`
	Size       string `json:"size" form:"size"`
	Website    string `json:"website" form:"website" validate:"omitempty,url"`
	Hiring     bool   `json:"hiring" form:"hiring"`
}

// AdSubmitRequest is the public ad submission.
type AdSubmitRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=2"`
	URL      string `json:"url" form:"url" validate:"omitempty,url"`
	Location string `json:"location" form:"location"`
}

// PostSaveRequest creates or edits a post.
type PostSaveRequest struct {
	Title   string `json:"title" form:"title" validate:"required,min=2"`
	Content string `json:"content" form:"content" validate:"required"`
}

// BulkRequest runs one moderation action over a selection, in order.
type BulkRequest struct {
	Action string   `json:"action" validate:"required"`
	IDs    []string `json:"ids" validate:"required,min=1"`
}
