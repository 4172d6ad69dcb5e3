package runner

import (
	"github.com/luciancaetano/gateprobe/internal/scenario"
)

// RegisterDefaults installs the standard groups in their standard order.
func RegisterDefaults(o *Orchestrator, stress *StressRunner, total, width int) {
	o.Register("register",
		scenario.Scenario{Name: "register", Run: scenario.Register},
		scenario.Scenario{Name: "register_duplicate", Run: scenario.RegisterDuplicate},
	)
	o.Register("login",
		scenario.Scenario{Name: "login", Run: scenario.Login},
		scenario.Scenario{Name: "login_wrong_password", Run: scenario.LoginWrongPassword},
		scenario.Scenario{Name: "login_nonexistent", Run: scenario.LoginNonexistent},
	)
	o.Register("heartbeat",
		scenario.Scenario{Name: "heartbeat", Run: scenario.Heartbeat},
		scenario.Scenario{Name: "heartbeat_before_login", Run: scenario.HeartbeatBeforeLogin},
	)
	o.Register("reconnect",
		scenario.Scenario{Name: "kick", Run: scenario.Kick},
	)
	o.Register("room",
		scenario.Scenario{Name: "join_room", Run: scenario.JoinRoom},
	)
	o.Register("stress", stress.Scenario(total, width))
}
