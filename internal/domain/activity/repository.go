package activity

import "context"

type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (Activity, error)
	AddParticipant(ctx context.Context, name, email string) (Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (Activity, error)
}
