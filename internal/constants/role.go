package constants

type Role string

const (
	RoleCreator Role = "creator"
	RoleWorker  Role = "worker"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCreator:
		return RoleCreator, true
	case RoleWorker:
		return RoleWorker, true
	}
	return "", false
}
