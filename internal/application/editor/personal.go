package editor

import (
	"fmt"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/validation"
)

const personalID = "personalInfo"

var personalRules = validation.FieldRules{
	"name":      {validation.Required("")},
	"title":     {validation.Required("")},
	"bio":       {validation.Required("")},
	"email":     {validation.Required(""), validation.Email()},
	"avatar":    {validation.URL()},
	"heroImage": {validation.URL()},
	"cvFileUrl": {validation.URL()},
	"linkedin":  {validation.URL()},
	"github":    {validation.URL()},
	"portfolio": {validation.URL()},
}

// PersonalInfoEditor edits personalInfo and its contact block.
type PersonalInfoEditor struct {
	store  DocumentStore
	errors *errorBook
}

func NewPersonalInfoEditor(s DocumentStore) *PersonalInfoEditor {
	return &PersonalInfoEditor{store: s, errors: newErrorBook()}
}

func personalField(pi *profile.PersonalInfo, field string) (*string, bool) {
	switch field {
	case "name":
		return &pi.Name, true
	case "title":
		return &pi.Title, true
	case "bio":
		return &pi.Bio, true
	case "avatar":
		return &pi.Avatar, true
	case "heroImage":
		return &pi.HeroImage, true
	case "cvFileUrl":
		return &pi.CVFileURL, true
	case "email":
		return &pi.Contact.Email, true
	case "phone":
		return &pi.Contact.Phone, true
	case "linkedin":
		return &pi.Contact.LinkedIn, true
	case "github":
		return &pi.Contact.GitHub, true
	case "portfolio":
		return &pi.Contact.Portfolio, true
	}
	return nil, false
}

// Set writes one personal or contact field. Editing a field clears its
// validation message.
func (e *PersonalInfoEditor) Set(field, value string) error {
	_, err := e.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		dst, ok := personalField(&prev.PersonalInfo, field)
		if !ok {
			return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown personal info field %q", field), profile.ErrUnknownField)
		}
		*dst = value
		return prev, nil
	})
	if err != nil {
		return err
	}
	e.errors.set(personalID, field, "")
	return nil
}

func (e *PersonalInfoEditor) Validate(field, value string) string {
	msg := personalRules.Check(sharedValidator(), field, value)
	e.errors.set(personalID, field, msg)
	return msg
}

func (e *PersonalInfoEditor) Errors() map[string]string {
	return e.errors.get(personalID)
}
