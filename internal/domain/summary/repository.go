package summary

import "context"

type Repository interface {
	List(ctx context.Context) ([]Document, error)
}
