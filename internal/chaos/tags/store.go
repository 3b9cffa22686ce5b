package tags

import (
	"sort"

	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"go.uber.org/zap"
)

// Key names a tag on a subject
type Key string

// Store holds per-subject tags. A key is either absent or holds exactly one
// value; setting it again overwrites.
//
// Store does no locking. All access must come from the single goroutine that
// owns the event loop and tick clock.
type Store[S comparable] struct {
	subjects map[S]map[Key]Value
	logger   *zap.Logger
}

// NewStore creates an empty tag store
func NewStore[S comparable](logger *zap.Logger) *Store[S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store[S]{
		subjects: make(map[S]map[Key]Value),
		logger:   logger,
	}
}

// Set attaches value under key, replacing any existing value
func (s *Store[S]) Set(subject S, key Key, value Value) error {
	if key == "" {
		return chaoserr.InvalidArgumentf("tag key is empty")
	}
	if !value.Valid() {
		return chaoserr.InvalidArgumentf("tag %q has an invalid value", key)
	}

	tags, ok := s.subjects[subject]
	if !ok {
		tags = make(map[Key]Value)
		s.subjects[subject] = tags
	}
	tags[key] = value

	s.logger.Debug("tag set",
		zap.Any("subject", subject),
		zap.String("tag", string(key)),
		zap.Stringer("value", value))
	return nil
}

// Has reports whether key is present on subject
func (s *Store[S]) Has(subject S, key Key) bool {
	_, ok := s.subjects[subject][key]
	return ok
}

// Get returns the value under key without removing it.
// Fails with tag_absent when the key is missing.
func (s *Store[S]) Get(subject S, key Key) (Value, error) {
	v, ok := s.subjects[subject][key]
	if !ok {
		return Value{}, chaoserr.TagAbsentf("tag %q not present", key).WithMeta("tag", string(key))
	}
	return v, nil
}

// Consume returns the value under key and removes it in the same step.
// A second Consume of the same key fails with tag_absent.
func (s *Store[S]) Consume(subject S, key Key) (Value, error) {
	tags := s.subjects[subject]
	v, ok := tags[key]
	if !ok {
		return Value{}, chaoserr.TagAbsentf("tag %q not present", key).WithMeta("tag", string(key))
	}

	delete(tags, key)
	if len(tags) == 0 {
		delete(s.subjects, subject)
	}

	s.logger.Debug("tag consumed",
		zap.Any("subject", subject),
		zap.String("tag", string(key)))
	return v, nil
}

// Remove deletes key from subject and reports whether it was present
func (s *Store[S]) Remove(subject S, key Key) bool {
	tags := s.subjects[subject]
	if _, ok := tags[key]; !ok {
		return false
	}
	delete(tags, key)
	if len(tags) == 0 {
		delete(s.subjects, subject)
	}
	return true
}

// RemoveAll drops every tag on subject and returns how many were removed.
// Called when the subject is destroyed.
func (s *Store[S]) RemoveAll(subject S) int {
	tags, ok := s.subjects[subject]
	if !ok {
		return 0
	}
	delete(s.subjects, subject)

	s.logger.Debug("subject tags cleared",
		zap.Any("subject", subject),
		zap.Int("removed", len(tags)))
	return len(tags)
}

// Keys returns the sorted tag keys present on subject
func (s *Store[S]) Keys(subject S) []Key {
	tags := s.subjects[subject]
	keys := make([]Key, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of subjects currently holding at least one tag
func (s *Store[S]) Len() int {
	return len(s.subjects)
}
