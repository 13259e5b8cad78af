package scoredb

import (
	"time"

	"github.com/uptrace/bun"

	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// Score represents a single recorded score event. Scores are immutable once
// submitted; they only disappear when their owner is deleted (FK cascade).
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Score         int64     `bun:"score,notnull" json:"score"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	OwnerID       int64     `bun:"owner_id,notnull" json:"owner_id"`

	Owner *userdb.User `bun:"rel:belongs-to,join:owner_id=id" json:"owner,omitempty"`
}
