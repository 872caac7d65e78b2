package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

const (
	MsgRequired = "Wajib diisi"
	MsgEmail    = "Format email tidak valid"
	MsgPhone    = "Nomor telepon hanya boleh berisi angka, spasi, +, - dan tanda kurung"
	MsgDate     = "Format tanggal harus YYYY-MM-DD"
	MsgChoice   = "Pilihan tidak valid"
	MsgNegative = "Nilai tidak boleh negatif"
	MsgURL      = "Format URL tidak valid"
	MsgInvalid  = "Nilai tidak valid"
)

// Validator checks records against their validate tags and reports problems
// keyed by the JSON field name.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Fields validates s and returns field -> message, or nil when s is valid.
func (v *Validator) Fields(s any) map[string]string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "email":
		return MsgEmail
	case "phone":
		return MsgPhone
	case "datetime":
		return MsgDate
	case "oneof":
		return MsgChoice
	case "gte":
		if fe.Param() == "0" {
			return MsgNegative
		}
		return fmt.Sprintf("Minimal %s", fe.Param())
	case "min":
		return fmt.Sprintf("Minimal %s karakter", fe.Param())
	case "url":
		return MsgURL
	default:
		return MsgInvalid
	}
}
