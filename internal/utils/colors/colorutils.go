package colors

import "github.com/fatih/color"

var (
	SuccessC         = color.New(color.FgGreen)
	WarningC         = color.New(color.FgYellow)
	FailureC         = color.New(color.FgRed)
	TroubleshootingC = color.New(color.Faint)
	FaintC           = color.New(color.Faint)
	BoldC            = color.New(color.Bold)
)

var (
	Success         = SuccessC.Sprint
	Warning         = WarningC.Sprint
	Failure         = FailureC.Sprint
	Troubleshooting = TroubleshootingC.Sprint
	Faint           = FaintC.Sprint
	Bold            = BoldC.Sprint
)
