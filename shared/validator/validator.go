package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"phoenix/shared/constant"
	"phoenix/shared/failure"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return file.Size <= maxSizeBytes
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads a JSON body from the given io.Reader into the given struct and
// validates it. Used by the /api surface.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateForm populates the struct from url-encoded form values using `form`
// struct tags, then validates it. Used by the page handlers.
func ValidateForm[T any](values url.Values, data *T) error {
	if err := decodeForm(values, data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// decodeForm assigns form values to struct fields by their `form` tag.
// Only the field kinds that actually appear in our request DTOs are handled.
func decodeForm(values url.Values, data any) error {
	v := reflect.ValueOf(data).Elem()
	t := v.Type()

	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("form")
		if tag == "" || tag == "-" {
			continue
		}

		field := v.Field(i)

		if field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.String {
			if raw, ok := values[tag]; ok {
				field.Set(reflect.ValueOf(raw))
			}

			continue
		}

		raw := values.Get(tag)
		if raw == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("field %s: %w", tag, err)
			}

			field.SetInt(n)
		case reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("field %s: %w", tag, err)
			}

			field.SetFloat(f)
		case reflect.Bool:
			field.SetBool(raw == "true" || raw == "on" || raw == "1")
		default:
			return fmt.Errorf("field %s: unsupported kind %s", tag, field.Kind())
		}
	}

	return nil
}
