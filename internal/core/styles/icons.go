package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconWrench    = "\U000F0228" // 󰈨 repair bench
	IconPhone     = "\U000F011C" // device intake
	IconCheckList = " "
	IconClient    = " "
	IconWarning   = " "
	IconClock     = " "
)

// Notification icons
var (
	IconNotifyInfo    = ""
	IconNotifyWarning = ""
	IconNotifyError   = ""
)
