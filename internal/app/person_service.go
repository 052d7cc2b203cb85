package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// Compile-time check that PersonService implements ports.PersonService.
var _ ports.PersonService = (*PersonService)(nil)

// PersonService implements ports.PersonService. Mail address uniqueness is
// checked through a PersonUniquenessChecker over the same repository.
type PersonService struct {
	people  ports.PersonRepository
	checker person.UniquenessChecker
	logger  *slog.Logger
}

// NewPersonService creates a PersonService. A nil logger discards output.
func NewPersonService(people ports.PersonRepository, logger *slog.Logger) *PersonService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PersonService{
		people:  people,
		checker: NewPersonUniquenessChecker(people),
		logger:  logger,
	}
}

// ListPeople returns everyone ordered by last name, then first name.
func (s *PersonService) ListPeople(ctx context.Context) ([]person.Person, error) {
	s.logger.InfoContext(ctx, "listing people")

	people, err := s.people.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list people",
			slog.String("operation", "ListPeople"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return people, nil
}

// GetPerson returns a single person by ID.
func (s *PersonService) GetPerson(ctx context.Context, id int64) (*person.Person, error) {
	s.logger.InfoContext(ctx, "fetching person", slog.Int64("id", id))

	p, err := s.people.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch person",
			slog.String("operation", "GetPerson"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// CreatePerson validates and stores a new person.
func (s *PersonService) CreatePerson(ctx context.Context, in ports.PersonInput) (*person.Person, error) {
	s.logger.InfoContext(ctx, "creating person", slog.String("mail_address", in.MailAddress))

	p, err := person.New(ctx, in.LastName, in.FirstName, in.MailAddress, s.checker)
	if err != nil {
		return nil, err
	}

	if err := s.people.Create(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "failed to create person",
			slog.String("operation", "CreatePerson"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// UpdatePerson applies in to the person with id. Unchanged input is neither
// checked for uniqueness nor written back.
func (s *PersonService) UpdatePerson(ctx context.Context, id int64, in ports.PersonInput) (*person.Person, error) {
	s.logger.InfoContext(ctx, "updating person", slog.Int64("id", id))

	p, err := s.people.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch person",
			slog.String("operation", "UpdatePerson"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	before := *p
	if err := p.Update(ctx, in.LastName, in.FirstName, in.MailAddress, s.checker); err != nil {
		return nil, err
	}
	if *p == before {
		return p, nil
	}

	if err := s.people.Update(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "failed to update person",
			slog.String("operation", "UpdatePerson"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// DeletePerson removes a person together with their usages.
func (s *PersonService) DeletePerson(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting person", slog.Int64("id", id))

	if err := s.people.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete person",
			slog.String("operation", "DeletePerson"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
