package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `

   ___  ___ ___  _____  ___ ___
  / _ \/ _ '/ // / _ \(_-</ -_)
 /_//_/\_,_/\_, /\___/___/\__/
           /___/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tkotoba-tools\n\n")
}

// GetUpdateCallback returns a callback function that updates nayose
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("nayose", version)()
	}
}
