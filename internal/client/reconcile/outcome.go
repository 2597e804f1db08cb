package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/common"
)

type Tier string

const (
	TierNone       Tier = "none"
	TierRemote     Tier = "remote"
	TierStructured Tier = "structured"
	TierFlat       Tier = "flat"
)

// FailureKind classifies a tier error. All kinds are handled the same way;
// the distinction is for logs and tests.
type FailureKind int

const (
	KindNone FailureKind = iota
	// Unavailable: unsupported runtime, network down, not authenticated.
	Unavailable
	// OperationFailed: quota, permission, driver error.
	OperationFailed
	// Serialization: stored payload does not parse.
	Serialization
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case Unavailable:
		return "unavailable"
	case OperationFailed:
		return "operation_failed"
	case Serialization:
		return "serialization"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Classify maps an error returned by a tier to a FailureKind.
func Classify(err error) FailureKind {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, common.ErrNotSupported),
		errors.Is(err, common.ErrUnavailable),
		errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, context.DeadlineExceeded):
		return Unavailable
	case errors.Is(err, common.ErrCorruptData),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return Serialization
	default:
		return OperationFailed
	}
}

// Outcome is the result of one tier operation.
type Outcome struct {
	Tier    Tier
	Op      string
	Records int
	Kind    FailureKind
	Err     error
}

func (o Outcome) OK() bool { return o.Err == nil }

func newOutcome(tier Tier, op string, records int, err error) Outcome {
	return Outcome{Tier: tier, Op: op, Records: records, Kind: Classify(err), Err: err}
}

// LoadResult is the adopted collection together with the decision trail.
type LoadResult struct {
	Source     Tier
	Wallpapers []models.Wallpaper
	Outcomes   []Outcome
}

// PersistResult lists the synchronous local write outcomes. The remote
// operation runs in the background and is only logged.
type PersistResult struct {
	Outcomes []Outcome
}

type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeCreate
	ChangeUpdate
	ChangeDelete
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCreate:
		return "create"
	case ChangeUpdate:
		return "update"
	case ChangeDelete:
		return "delete"
	default:
		return "none"
	}
}

// Change is the single-record operation that produced a snapshot. It is
// what the remote tier receives; local tiers always get the full snapshot.
type Change struct {
	Kind      ChangeKind
	Wallpaper models.Wallpaper
	ID        string
}

func Created(w models.Wallpaper) Change { return Change{Kind: ChangeCreate, Wallpaper: w, ID: w.ID} }
func Updated(w models.Wallpaper) Change { return Change{Kind: ChangeUpdate, Wallpaper: w, ID: w.ID} }
func Deleted(id string) Change          { return Change{Kind: ChangeDelete, ID: id} }
