// Command carbochat is the interactive terminal client for CarboBot. It runs
// the full assistant pipeline in-process against the configured inference
// backend, the same way the HTTP server does.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ewasteheroes/carbobot/internal/action"
	"github.com/ewasteheroes/carbobot/internal/adapter/llm"
	"github.com/ewasteheroes/carbobot/internal/adapter/waste"
	"github.com/ewasteheroes/carbobot/internal/config"
	"github.com/ewasteheroes/carbobot/internal/domain"
	"github.com/ewasteheroes/carbobot/internal/intent"
	"github.com/ewasteheroes/carbobot/internal/service"
	"github.com/ewasteheroes/carbobot/internal/store"
)

// cliSessionID is the single session an interactive run talks to.
const cliSessionID = "cli"

var debug bool

var rootCmd = &cobra.Command{
	Use:   "carbochat [message]",
	Short: "CarboBot - Karbon Ayak İzi Asistanı",
	Long: `carbochat talks to CarboBot from the terminal.

With no arguments it starts an interactive conversation. With a message
argument it answers once and exits.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		svc := newService(cfg)

		if len(args) > 0 {
			return runOnce(svc, strings.Join(args, " "))
		}
		return runInteractive(svc, cfg)
	},
}

func main() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "print recognized intent and confidence")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService(cfg *config.Config) *service.Service {
	conversations := store.NewMemoryStore(cfg.MaxHistory)
	actions := action.NewHandler(waste.NewClient(cfg.WasteServiceURL), nil)
	gateway := llm.NewGateway(cfg.OllamaURL, cfg.OllamaModel, cfg.OllamaAPIKey)

	return service.New(conversations, intent.NewRecognizer(intent.DefaultCatalog()), actions, gateway, nil, nil, nil, nil)
}

func runOnce(svc *service.Service, message string) error {
	res := svc.Chat(context.Background(), cliSessionID, message, domain.SurfaceCLI)
	printReply(res)
	return nil
}

func runInteractive(svc *service.Service, cfg *config.Config) error {
	p := termenv.ColorProfile()

	printBanner()

	probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	healthy := svc.CheckBackend(probeCtx)
	cancel()
	if healthy {
		fmt.Println(green(p, fmt.Sprintf("✔ Ollama bağlantısı başarılı! Model: %s", cfg.OllamaModel)))
	} else {
		fmt.Println(yellow(p, "⚠️  Ollama servisine bağlanılamadı veya model bulunamadı."))
		fmt.Println(dim(p, "💡 Ollama'yı başlatmak için: ollama serve"))
		fmt.Println(dim(p, fmt.Sprintf("💡 Model yüklemek için: ollama pull %s", cfg.OllamaModel)))
	}

	fmt.Println()
	fmt.Println(cyan(p, "👋 Merhaba! Ben CarboBot, karbon ayak izi ve e-atık konusunda uzmanım."))
	fmt.Println(yellow(p, "🌱 Size çevre dostu kararlar almanızda yardımcı olacağım!"))
	fmt.Println()
	fmt.Println(dim(p, `💡 Komutlar: "yardım" | "geçmiş" | "temizle" | "çıkış"`))
	fmt.Println(dim(p, `💬 Örnek: "En yakın toplama noktası nerede?" veya "CO₂ tasarrufumuz ne kadar?"`))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cyan(p, "💬 Sen: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "çıkış", "çık":
			fmt.Println(green(p, "\n👋 Görüşmek üzere! Çevre için yaptıklarınız harika! 🌍💚"))
			fmt.Println(cyan(p, "✨ Unutma: Her geri dönüştürdüğün cihaz, daha yeşil bir gelecek demek!"))
			return nil
		case "clear", "temizle":
			termenv.ClearScreen()
			fmt.Println(green(p, "✨ Ekran temizlendi!"))
			continue
		case "history", "geçmiş", "konuşma":
			printHistory(svc, p)
			continue
		}

		res := svc.Chat(context.Background(), cliSessionID, input, domain.SurfaceCLI)
		if debug {
			fmt.Println(dim(p, fmt.Sprintf("Intent: %s (%.0f%%)", res.Recognition.Intent, res.Recognition.Confidence*100)))
		}
		printReply(res)
	}

	fmt.Println(dim(p, "\n🌱 CarboBot kapatıldı. Çevre için teşekkürler!"))
	return scanner.Err()
}

func printReply(res service.Result) {
	p := termenv.ColorProfile()
	if res.Source == domain.ReplySourceAction {
		fmt.Println("\n" + res.Reply)
		fmt.Println()
		return
	}
	fmt.Println("\n" + green(p, "🤖 CarboBot: ") + res.Reply)
	fmt.Println()
}

func printHistory(svc *service.Service, p termenv.Profile) {
	history, err := svc.History(context.Background(), cliSessionID)
	if err != nil {
		fmt.Println(yellow(p, "⚠️  Geçmiş okunamadı: "+err.Error()))
		return
	}

	fmt.Println(green(p, "\n📜 Konuşma Geçmişi:"))
	fmt.Println()
	if len(history) == 0 {
		fmt.Println(dim(p, "Henüz konuşma yok."))
		fmt.Println()
		return
	}

	for i, turn := range history {
		if turn.Role == domain.RoleUser {
			fmt.Println(cyan(p, "💬 Sen: ") + turn.Content)
		} else {
			fmt.Println(green(p, "🤖 CarboBot: ") + turn.Content)
		}
		if i < len(history)-1 {
			fmt.Println(dim(p, strings.Repeat("─", 60)))
		}
	}
	fmt.Println()
}

func printBanner() {
	p := termenv.ColorProfile()
	top := termenv.String("╔══════════════════════════════════════════════════════════════╗").Foreground(p.Color("#22c55e"))
	mid := termenv.String("║         🤖 CarboBot - Karbon Ayak İzi Asistanı 🌍            ║").Foreground(p.Color("#06b6d4"))
	sub := termenv.String("║              E-Atık Koruyucuları Platformu                   ║").Foreground(p.Color("#22c55e"))
	bot := termenv.String("╚══════════════════════════════════════════════════════════════╝").Foreground(p.Color("#22c55e"))

	fmt.Println()
	fmt.Println(top)
	fmt.Println(mid)
	fmt.Println(sub)
	fmt.Println(bot)
	fmt.Println()
}

func green(p termenv.Profile, s string) string {
	return termenv.String(s).Foreground(p.Color("#22c55e")).String()
}

func cyan(p termenv.Profile, s string) string {
	return termenv.String(s).Foreground(p.Color("#06b6d4")).String()
}

func yellow(p termenv.Profile, s string) string {
	return termenv.String(s).Foreground(p.Color("#eab308")).String()
}

func dim(p termenv.Profile, s string) string {
	return termenv.String(s).Faint().String()
}
