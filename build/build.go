package build

// ตั้งค่าตอน build ด้วย -ldflags "-X go-rewards/build.Version=... -X go-rewards/build.Time=..."
var (
	Version = "local-dev"
	Time    = "n/a"
)
