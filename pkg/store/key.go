package store

import (
	"regexp"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"gopkg.in/yaml.v3"
)

var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Key names a stored value of type T. Validate, when set, runs on every
// read and write.
type Key[T any] struct {
	Name     string
	Validate func(T) error
}

// ValidateKeyName checks that name is usable as a store key
func ValidateKeyName(name string) error {
	if !keyPattern.MatchString(name) {
		return errors.Newf(errors.ErrStoreKey, "invalid store key %q", name).
			WithDetail("key", name)
	}
	return nil
}

func (k Key[T]) validate(v T) error {
	if k.Validate == nil {
		return nil
	}
	if err := k.Validate(v); err != nil {
		return errors.Wrapf(err, errors.ErrStoreSchema, "invalid value for key %s", k.Name).
			WithDetail("key", k.Name)
	}
	return nil
}

// Get reads and decodes the value for key. An absent key returns the zero
// value with ok == false.
func Get[T any](b Backend, key Key[T]) (value T, ok bool, err error) {
	if err := ValidateKeyName(key.Name); err != nil {
		return value, false, err
	}

	data, ok, err := b.Read(key.Name)
	if err != nil || !ok {
		return value, false, err
	}

	if err := yaml.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, false, errors.Wrapf(err, errors.ErrStoreSchema, "failed to decode key %s", key.Name).
			WithDetail("key", key.Name)
	}
	if err := key.validate(value); err != nil {
		var zero T
		return zero, false, err
	}
	return value, true, nil
}

// Set validates, encodes and writes value under key
func Set[T any](b Backend, key Key[T], value T) error {
	if err := ValidateKeyName(key.Name); err != nil {
		return err
	}
	if err := key.validate(value); err != nil {
		return err
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreSchema, "failed to encode key %s", key.Name).
			WithDetail("key", key.Name)
	}
	return b.Write(key.Name, data)
}

// Remove deletes the value stored under key
func Remove[T any](b Backend, key Key[T]) error {
	if err := ValidateKeyName(key.Name); err != nil {
		return err
	}
	return b.Delete(key.Name)
}
