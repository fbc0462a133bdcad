package collab

import (
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

func noticeFor(cmd Command, ttl time.Duration) ports.Notice {
	n := ports.Notice{Tone: ports.ToneSuccess, DismissAfter: ttl}

	switch c := cmd.(type) {
	case Join:
		n.Message = "You joined the project."
	case Leave:
		n.Message, n.Tone = "You left the project.", ports.ToneNeutral
	case SendRequest:
		n.Message = "Request sent to the leader."
	case RespondRequest:
		if c.Status == project.RequestAccepted {
			n.Message = "Request accepted."
		} else {
			n.Message, n.Tone = "Request declined.", ports.ToneNeutral
		}
	case Save:
		if c.Project == "" {
			n.Message = "Project created."
		} else {
			n.Message = "Project updated."
		}
	case Delete:
		n.Message, n.Tone = "Project deleted.", ports.ToneNeutral
	}
	return n
}
