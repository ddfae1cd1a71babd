// internal/domain/homework/homework.go
package homework

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Keys of the homework API payload.
const (
	KeyHomeworks    = "homeworks"
	KeyCurrentDate  = "current_date"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// Verdicts maps every recognized status to the text shown to the student.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the display text for a status and whether the status is known.
func Verdict(s Status) (string, bool) {
	v, ok := Verdicts[s]
	return v, ok
}
