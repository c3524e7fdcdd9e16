package handler

import (
	"context"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Dispatcher routes a Message to the service and builds the action's reply.
// Refusals such as a duplicate request are replies, not errors: the error
// return is left for malformed messages and storage failures.
type Dispatcher struct {
	svc       LinkService
	validator *validate.CustomValidator
	log       *zap.Logger
}

func NewDispatcher(svc LinkService, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		svc:       svc,
		validator: validate.NewCustomValidator(),
		log:       log.Named("dispatch"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, user string, msg Message) (any, error) {
	if err := d.validator.Validate(msg); err != nil {
		return nil, err
	}
	reply, err := d.dispatch(ctx, user, msg)
	if err != nil && errs.IsBusiness(err) {
		d.log.Debug("refused", zap.String("action", msg.Action), zap.Error(err))
		return refused(reply, err), nil
	}
	return reply, err
}

func refused(reply any, err error) any {
	status := Status{Message: errors.Cause(err).Error()}
	if r, ok := reply.(RequestCountReply); ok && errors.Is(err, errs.ErrAlreadyRequested) {
		r.Status = status
		return r
	}
	return status
}

func missing(action, field string) error {
	return errors.Wrapf(errs.ErrMissingField, "%s: %s", action, field)
}

func checkClassSize(action string, classSize int) error {
	if classSize < 1 {
		return errors.Wrap(errs.ErrClassSize, action)
	}
	return nil
}

func (d *Dispatcher) dispatch(ctx context.Context, user string, msg Message) (any, error) {
	switch msg.Action {
	case ActionCheckBook:
		if msg.BookInfo == nil {
			return nil, missing(msg.Action, "bookInfo")
		}
		if msg.BookInfo.IsEmpty() {
			return nil, errors.Wrap(errs.ErrEmptyIdentity, msg.Action)
		}
		book, found, err := d.svc.CheckBook(ctx, *msg.BookInfo)
		if err != nil {
			if errors.Is(err, errs.ErrCatalogUnavailable) {
				return CheckBookReply{Error: err.Error()}, nil
			}
			return nil, err
		}
		if !found {
			return CheckBookReply{}, nil
		}
		return CheckBookReply{Found: true, BookData: &book}, nil

	case ActionBorrowBook:
		if msg.Book == nil {
			return nil, missing(msg.Action, "book")
		}
		savings, err := d.svc.BorrowBook(ctx, user, *msg.Book)
		if err != nil {
			return nil, err
		}
		return SavingsReply{Status: Status{Success: true}, TotalSavings: savings}, nil

	case ActionAddRequest:
		if msg.Book == nil {
			return nil, missing(msg.Action, "book")
		}
		count, err := d.svc.AddRequest(ctx, user, *msg.Book)
		return RequestCountReply{Status: Status{Success: err == nil}, RequestCount: count}, err

	case ActionCheckUserRequest:
		requested, err := d.svc.CheckUserRequest(ctx, user, msg.identifier())
		if err != nil {
			return nil, err
		}
		return CheckUserRequestReply{HasRequested: requested}, nil

	case ActionGetRequestCount:
		count, err := d.svc.GetRequestCount(ctx, msg.identifier())
		if err != nil {
			return nil, err
		}
		return GetRequestCountReply{RequestCount: count}, nil

	case ActionGetSavings:
		savings, err := d.svc.GetSavings(ctx)
		if err != nil {
			return nil, err
		}
		return GetSavingsReply{TotalSavings: savings}, nil

	case ActionSwitchPersona:
		if err := d.svc.SwitchPersona(ctx, user, msg.Persona); err != nil {
			return nil, err
		}
		return PersonaReply{Success: true, Persona: msg.Persona}, nil

	case ActionGetCurrentPersona:
		persona, err := d.svc.CurrentPersona(ctx)
		if err != nil {
			return nil, err
		}
		return PersonaReply{Persona: persona}, nil

	case ActionAddToCourseReserve:
		if msg.Book == nil {
			return nil, missing(msg.Action, "book")
		}
		if msg.CourseCode == "" {
			return nil, missing(msg.Action, "courseCode")
		}
		if err := checkClassSize(msg.Action, msg.ClassSize); err != nil {
			return nil, err
		}
		if err := d.svc.AddToCourseReserve(ctx, msg.CourseCode, *msg.Book, msg.ClassSize); err != nil {
			return nil, err
		}
		return CourseReply{Status: Status{Success: true}, CourseCode: msg.CourseCode}, nil

	case ActionRemoveFromCourseReserve:
		if msg.CourseCode == "" {
			return nil, missing(msg.Action, "courseCode")
		}
		if msg.ISBN == "" {
			return nil, missing(msg.Action, "isbn")
		}
		if err := d.svc.RemoveFromCourseReserve(ctx, msg.CourseCode, msg.ISBN); err != nil {
			return nil, err
		}
		return Status{Success: true}, nil

	case ActionGetCourseReserves:
		if msg.CourseCode == "" {
			all, err := d.svc.AllCourseReserves(ctx)
			if err != nil {
				return nil, err
			}
			return ReservesReply{Reserves: all}, nil
		}
		items, err := d.svc.GetCourseReserves(ctx, msg.CourseCode)
		if err != nil {
			return nil, err
		}
		return ReservesReply{Reserves: items}, nil

	case ActionCheckBookInCourseReserves:
		if msg.ISBN == "" {
			return nil, missing(msg.Action, "isbn")
		}
		return d.svc.CheckBookInCourseReserves(ctx, msg.ISBN)

	case ActionRequestBookForCourse:
		if msg.Book == nil {
			return nil, missing(msg.Action, "book")
		}
		if msg.CourseCode == "" {
			return nil, missing(msg.Action, "courseCode")
		}
		if err := checkClassSize(msg.Action, msg.ClassSize); err != nil {
			return nil, err
		}
		count, err := d.svc.RequestBookForCourse(ctx, msg.CourseCode, *msg.Book, msg.ClassSize)
		if err != nil {
			return nil, err
		}
		return RequestCountReply{Status: Status{Success: true}, RequestCount: count}, nil

	case ActionGetBorrowedBooks:
		books, err := d.svc.GetBorrowedBooks(ctx)
		if err != nil {
			return nil, err
		}
		if books == nil {
			books = []model.BorrowedBook{}
		}
		return BorrowedBooksReply{Books: books, Count: len(books)}, nil

	case ActionGetRequests:
		requests, err := d.svc.GetRequests(ctx)
		if err != nil {
			return nil, err
		}
		if requests == nil {
			requests = []model.RequestRecord{}
		}
		return RequestsReply{Requests: requests}, nil

	case ActionGetProfessorProfile:
		persona, err := d.svc.CurrentPersona(ctx)
		if err != nil {
			return nil, err
		}
		reply := ProfileReply{Persona: persona}
		if persona == model.PersonaProfessor {
			profile := d.svc.ProfessorProfile()
			reply.Profile = &profile
		}
		return reply, nil

	case ActionSetCurrentBook:
		if msg.BookInfo == nil {
			return nil, missing(msg.Action, "bookInfo")
		}
		if err := d.svc.SetCurrentBook(ctx, *msg.BookInfo); err != nil {
			return nil, err
		}
		return Status{Success: true}, nil

	case ActionGetCurrentBook:
		book, found, err := d.svc.GetCurrentBook(ctx)
		if err != nil {
			return nil, err
		}
		if !found {
			return CurrentBookReply{}, nil
		}
		return CurrentBookReply{Found: true, BookInfo: &book}, nil
	}
	return nil, errors.Wrap(errs.ErrUnknownAction, msg.Action)
}
