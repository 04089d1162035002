package cli

import (
	"fmt"

	"github.com/diillson/ecommerce-dashboard-go/pkg/console"
	"github.com/diillson/ecommerce-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     ___                                             ___          _    _                      _ 
    | __|___ __ ___ _ __  _ __  ___ _ _ __ ___      |   \ __ _ __| |_ | |__  ___  __ _ _ _ __| |
    | _|___/ _/ _ \ '  \| '  \/ -_) '_/ _/ -_)     | |) / _' (_-< ' \| '_ \/ _ \/ _' | '_/ _' |
    |___|  \__\___/_|_|_|_|_|_\___|_| \__\___|     |___/\__,_/__/_||_|_.__/\___/\__,_|_| \__,_|
        `
	fmt.Println(console.BoldRed(banner))
	fmt.Println(console.BrightBlue(fmt.Sprintf("E-Commerce Dashboard CLI (v%s)", version.FormatVersion())))
}
