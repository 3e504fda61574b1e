package progression

// Storage keys carried over from the browser client so exported state stays
// compatible with what the old app kept in localStorage.
const (
	StudentStateKey    = "ecolearn_student"
	OwnedItemsStateKey = "ecolearn_owned_items"
)

// StateStore is the persistence collaborator. Values are JSON documents
// stored under fixed keys; absence of a key is not an error.
type StateStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Event kinds passed to the Notifier
const (
	EventAchievement = "achievement"
	EventPurchase    = "purchase"
	EventBadge       = "badge"
)

// Notifier receives fire-and-forget feedback events after successful
// mutations. Implementations must be cheap; the store shields itself from
// panics and never waits on the call.
type Notifier interface {
	Notify(eventKind string)
}

// NotifierFunc adapts a plain function to the Notifier interface
type NotifierFunc func(eventKind string)

// Notify calls f(eventKind)
func (f NotifierFunc) Notify(eventKind string) {
	f(eventKind)
}
