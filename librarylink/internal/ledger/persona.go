package ledger

import (
	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

func SwitchPersona(st model.State, persona model.Persona) (model.State, error) {
	if !persona.Valid() {
		return st, errs.ErrInvalidPersona
	}
	next := st.Clone()
	next.CurrentPersona = persona
	return next, nil
}

// CurrentPersona defaults to student.
func CurrentPersona(st model.State) model.Persona {
	if st.CurrentPersona == "" {
		return model.PersonaStudent
	}
	return st.CurrentPersona
}

// SetCurrentBook remembers the book the page observer last detected.
func SetCurrentBook(st model.State, book model.BookIdentity) (model.State, error) {
	if book.IsEmpty() {
		return st, errs.ErrEmptyIdentity
	}
	next := st.Clone()
	next.CurrentBook = &book
	return next, nil
}

func CurrentBook(st model.State) (model.BookIdentity, bool) {
	if st.CurrentBook == nil {
		return model.BookIdentity{}, false
	}
	return *st.CurrentBook, true
}
