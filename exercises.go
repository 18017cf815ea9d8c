package client

import "context"

// ExerciseStore caches the exercise library and its revision
// proposals. All mutations are admin-gated locally, mirroring the
// server's authorization rules before any network call is made.
type ExerciseStore struct {
	storeState

	client  *Client
	session *SessionManager

	exercises []Exercise
	proposals []Proposal
}

// NewExerciseStore wires a store to the gateway and the session.
func NewExerciseStore(c *Client, session *SessionManager) *ExerciseStore {
	return &ExerciseStore{client: c, session: session}
}

// Exercises returns a copy of the cached library.
func (s *ExerciseStore) Exercises() []Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Exercise, len(s.exercises))
	copy(out, s.exercises)
	return out
}

// Proposals returns a copy of the cached proposals.
func (s *ExerciseStore) Proposals() []Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Proposal, len(s.proposals))
	copy(out, s.proposals)
	return out
}

// ActiveExercises returns the non-deprecated subset of the cache.
func (s *ExerciseStore) ActiveExercises() []Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Exercise
	for _, e := range s.exercises {
		if !e.Deprecated {
			out = append(out, e)
		}
	}
	return out
}

// FindByID returns a copy of the cached exercise or nil.
func (s *ExerciseStore) FindByID(id string) *Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exercises {
		if e.ID == id {
			cp := e
			return &cp
		}
	}
	return nil
}

// ProposalsByExercise returns the cached proposals referencing one
// exercise.
func (s *ExerciseStore) ProposalsByExercise(exerciseID string) []Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Proposal
	for _, p := range s.proposals {
		if p.Exercise == exerciseID {
			out = append(out, p)
		}
	}
	return out
}

// ensureAdmin is the synchronous guard in front of every mutating
// operation: it fails before any network call unless the session is
// authenticated and flagged admin.
func (s *ExerciseStore) ensureAdmin() (Session, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return sess, ErrNotSignedIn
	}
	if !sess.IsAdmin {
		return sess, ErrAdminRequired
	}
	return sess, nil
}

// FetchExercises replaces the cached library wholesale.
// Unauthenticated it empties the cache without error.
func (s *ExerciseStore) FetchExercises(ctx context.Context, includeDeprecated bool) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.mu.Lock()
		s.exercises = nil
		s.mu.Unlock()
		return
	}
	s.begin()
	defer s.end()
	rows, err := s.client.ListExercises(ctx, ListExercisesRequest{Session: sess.Token, IncludeDeprecated: includeDeprecated})
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.exercises = rows
	s.mu.Unlock()
}

// RefreshExercise re-fetches a single record and splices it into the
// cache by id, replacing in place or appending. This targeted merge is
// what keeps unrelated cached entries untouched after a
// single-exercise mutation.
func (s *ExerciseStore) RefreshExercise(ctx context.Context, id string) {
	sess := s.session.Current()
	rows, err := s.client.GetExerciseByID(ctx, ExerciseRequest{Session: sess.Token, Exercise: id})
	if err != nil {
		s.fail(err)
		return
	}
	if len(rows) == 0 {
		return
	}
	rec := rows[0]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			s.exercises[i] = rec
			return
		}
	}
	s.exercises = append(s.exercises, rec)
}

// CreateExercise publishes a new exercise and refreshes its record.
// Returns the new exercise id.
func (s *ExerciseStore) CreateExercise(ctx context.Context, details ExerciseDetails) (string, error) {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return "", err
	}
	resp, err := s.client.AddExercise(ctx, AddExerciseRequest{Session: sess.Token, ExerciseDetails: details})
	if err != nil {
		s.fail(err)
		return "", err
	}
	s.RefreshExercise(ctx, resp.Exercise)
	return resp.Exercise, nil
}

// CreateDraft creates an unlisted draft exercise and returns its id.
// Drafts are not merged into the visible cache until published.
func (s *ExerciseStore) CreateDraft(ctx context.Context, title string) (string, error) {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return "", err
	}
	resp, err := s.client.AddExerciseDraft(ctx, AddExerciseDraftRequest{Session: sess.Token, Title: title})
	if err != nil {
		s.fail(err)
		return "", err
	}
	return resp.Exercise, nil
}

// SaveExercise overwrites an exercise's details and refreshes its
// record.
func (s *ExerciseStore) SaveExercise(ctx context.Context, id string, details ExerciseDetails) error {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return err
	}
	if err := s.client.UpdateExercise(ctx, UpdateExerciseRequest{Session: sess.Token, Exercise: id, ExerciseDetails: details}); err != nil {
		s.fail(err)
		return err
	}
	s.RefreshExercise(ctx, id)
	return nil
}

// DeprecateExercise retires an exercise and refreshes its record.
func (s *ExerciseStore) DeprecateExercise(ctx context.Context, id string) error {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return err
	}
	if err := s.client.DeprecateExercise(ctx, ExerciseRequest{Session: sess.Token, Exercise: id}); err != nil {
		s.fail(err)
		return err
	}
	s.RefreshExercise(ctx, id)
	return nil
}

// ProposalFilter selects one of the two fetch modes. ExerciseID and
// Status are mutually exclusive; ExerciseID wins when both are set.
type ProposalFilter struct {
	ExerciseID string
	Status     string
}

// FetchProposals synchronizes the proposal cache. By-exercise mode
// replaces only that exercise's partition, leaving proposals for other
// exercises untouched; by-status (or unfiltered) mode replaces the
// whole cache. Alternating modes across calls must not corrupt either
// partition.
func (s *ExerciseStore) FetchProposals(ctx context.Context, filter ProposalFilter) error {
	sess := s.session.Current()
	if filter.ExerciseID != "" {
		rows, err := s.client.GetProposalsForExercise(ctx, ExerciseRequest{Session: sess.Token, Exercise: filter.ExerciseID})
		if err != nil {
			s.fail(err)
			return err
		}
		s.mu.Lock()
		merged := make([]Proposal, 0, len(s.proposals)+len(rows))
		for _, p := range s.proposals {
			if p.Exercise != filter.ExerciseID {
				merged = append(merged, p)
			}
		}
		s.proposals = append(merged, rows...)
		s.mu.Unlock()
		return nil
	}

	rows, err := s.client.ListProposals(ctx, ListProposalsRequest{Session: sess.Token, Status: filter.Status})
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.proposals = rows
	s.mu.Unlock()
	return nil
}

// RequestProposal asks the backend to draft a revision proposal for
// one exercise, then re-synchronizes that exercise's partition.
func (s *ExerciseStore) RequestProposal(ctx context.Context, exerciseID string) (string, error) {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return "", err
	}
	resp, err := s.client.ProposeDetails(ctx, ExerciseRequest{Session: sess.Token, Exercise: exerciseID})
	if err != nil {
		s.fail(err)
		return "", err
	}
	if err := s.FetchProposals(ctx, ProposalFilter{ExerciseID: exerciseID}); err != nil {
		return "", err
	}
	return resp.Proposal, nil
}

// ApplyProposal applies a pending proposal, then refreshes the whole
// proposal cache: applying can retire competing proposals beyond the
// one exercise.
func (s *ExerciseStore) ApplyProposal(ctx context.Context, proposalID string) error {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return err
	}
	if err := s.client.ApplyDetails(ctx, ProposalRequest{Session: sess.Token, Proposal: proposalID}); err != nil {
		s.fail(err)
		return err
	}
	return s.FetchProposals(ctx, ProposalFilter{})
}

// DiscardProposal discards a pending proposal, then refreshes the
// whole proposal cache.
func (s *ExerciseStore) DiscardProposal(ctx context.Context, proposalID string) error {
	sess, err := s.ensureAdmin()
	if err != nil {
		s.fail(err)
		return err
	}
	if err := s.client.DiscardDetails(ctx, ProposalRequest{Session: sess.Token, Proposal: proposalID}); err != nil {
		s.fail(err)
		return err
	}
	return s.FetchProposals(ctx, ProposalFilter{})
}
