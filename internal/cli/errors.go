package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s (run `blocksort docs` to list topics)", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type existsError struct {
	path string
}

func (e existsError) Error() string {
	return fmt.Sprintf("%s already exists (use --force to overwrite)", e.path)
}
