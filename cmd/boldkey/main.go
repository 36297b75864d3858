// Boldkey - приложение в системном трее, заменяющее выделенный текст
// жирными символами Unicode (Mathematical Sans-Serif Bold).
//
// Работает в любом приложении по глобальной горячей клавише (по умолчанию
// Ctrl+Shift+B) и в собственном окне-черновике по Ctrl+B.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boldkey/internal/app"
	"boldkey/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "boldkey",
	Short: "Turn selected text into bold Unicode characters",
	Long: `boldkey runs in the system tray and replaces the selected text in the
focused application with Mathematical Sans-Serif Bold characters. The
replacement is plain Unicode text, so it keeps its look in chats, social
networks and anywhere rich formatting is stripped.

Without a subcommand the tray application starts. The convert and table
subcommands work without a desktop session.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.Ltime | log.Lshortfile)
		log.Printf("Boldkey %s запускается...", Version)

		configPath := viper.GetString("config")

		// Запускаем в главном потоке (требование для macOS и некоторых GUI)
		hotkey.RunOnMainThread(func() { run(configPath) })
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: config.json next to the binary)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	viper.SetEnvPrefix("BOLDKEY")
	viper.AutomaticEnv()
}

func run(configPath string) {
	application, err := app.New(configPath)
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено. Выделите текст и нажмите горячую клавишу.")
	application.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
