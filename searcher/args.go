package searcher

import "time"

// Time allocation parameters

// DefaultMargin is shaved off every allotment to leave room for bookkeeping around the search.
const DefaultMargin = 50 * time.Millisecond

// FirstMoveShare is the multiple of the average per-move time given to the first move of a block.
const FirstMoveShare = 1.2
