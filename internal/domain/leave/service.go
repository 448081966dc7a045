package leave

import "context"

type LeaveService interface {
	CreateAbsence(ctx context.Context, req CreateLongAbsenceRequest) (LongAbsenceResponse, error)
	ListAbsences(ctx context.Context, filter LongAbsenceFilter) (ListLongAbsenceResponse, error)
	DeleteAbsence(ctx context.Context, id string) error
}
