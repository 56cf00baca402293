package core

import (
	"github.com/pkg/errors"
)

// Field identifies one directly-updatable document field. The constants carry
// the document's dot-path vocabulary, but navigation is a closed, typed set:
// unknown paths are errors instead of dynamically-created maps.
type Field string

const (
	FieldSchoolName        Field = "settings.schoolName"
	FieldSchoolPhone       Field = "settings.schoolPhone"
	FieldSchoolAddress     Field = "settings.schoolAddress"
	FieldSchoolLogo        Field = "settings.schoolLogo"
	FieldSignatureName     Field = "settings.signatureName"
	FieldSignatureTitle    Field = "settings.signatureTitle"
	FieldYearStartMonth    Field = "settings.schoolYearStartMonth"
	FieldDarkMode          Field = "settings.darkMode"
	FieldCurrentSchoolYear Field = "currentSchoolYear"
)

// Fields lists every updatable field.
func Fields() []Field {
	return []Field{
		FieldSchoolName,
		FieldSchoolPhone,
		FieldSchoolAddress,
		FieldSchoolLogo,
		FieldSignatureName,
		FieldSignatureTitle,
		FieldYearStartMonth,
		FieldDarkMode,
		FieldCurrentSchoolYear,
	}
}

// ParseField resolves a dot-path to its Field, rejecting unknown paths.
func ParseField(path string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == path {
			return f, nil
		}
	}
	return "", NewValidationError(errors.Errorf("unknown field %q", path))
}

// Set assigns value to the field on doc, checking the value's type (and range
// where applicable) first. The document is not mutated on error.
func (f Field) Set(doc *AppData, value interface{}) error {
	switch f {
	case FieldSchoolName, FieldSchoolPhone, FieldSchoolAddress,
		FieldSchoolLogo, FieldSignatureName, FieldSignatureTitle,
		FieldCurrentSchoolYear:
		s, ok := value.(string)
		if !ok {
			return f.typeError(value, "string")
		}
		switch f {
		case FieldSchoolName:
			doc.Settings.SchoolName = s
		case FieldSchoolPhone:
			doc.Settings.SchoolPhone = s
		case FieldSchoolAddress:
			doc.Settings.SchoolAddress = s
		case FieldSchoolLogo:
			doc.Settings.SchoolLogo = s
		case FieldSignatureName:
			doc.Settings.SignatureName = s
		case FieldSignatureTitle:
			doc.Settings.SignatureTitle = s
		case FieldCurrentSchoolYear:
			doc.CurrentSchoolYear = s
		}
		return nil
	case FieldYearStartMonth:
		m, ok := value.(int)
		if !ok {
			return f.typeError(value, "int")
		}
		if m < 1 || m > 12 {
			return NewValidationError(
				errors.Errorf("%s: month must be between 1 and 12", f),
				FieldError{Field: string(f), Error: "month must be between 1 and 12"},
			)
		}
		doc.Settings.SchoolYearStartMonth = m
		return nil
	case FieldDarkMode:
		b, ok := value.(bool)
		if !ok {
			return f.typeError(value, "bool")
		}
		doc.Settings.DarkMode = b
		return nil
	default:
		return NewValidationError(errors.Errorf("unknown field %q", string(f)))
	}
}

func (f Field) typeError(value interface{}, want string) error {
	return NewValidationError(
		errors.Errorf("%s: expected %s, got %T", f, want, value),
		FieldError{Field: string(f), Error: "expected " + want},
	)
}
