package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"calc-be/api/internal/answer"
	"calc-be/api/internal/calc"
	"calc-be/api/internal/config"
	"calc-be/api/internal/util"
	"calc-be/api/internal/vision/gemini"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func main() {
	cfg := config.Load()
	if cfg.TelegramToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}
	if cfg.WebhookURL == "" {
		log.Fatal("missing required env WEBHOOK_URL")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	solver := calc.NewSolver(gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel))

	path := "/webhook/" + shortHash(cfg.TelegramToken)
	public := strings.TrimRight(cfg.WebhookURL, "/") + path

	whcfg, err := tgbotapi.NewWebhook(public)
	if err != nil {
		log.Fatal(err)
	}
	whcfg.DropPendingUpdates = true
	if _, err := bot.Request(whcfg); err != nil {
		log.Fatal(err)
	}

	updates := bot.ListenForWebhook(path)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("calc webhook bot"))
	})

	go func() {
		for upd := range updates {
			handleUpdate(bot, solver, cfg.TelegramToken, upd)
		}
	}()

	addr := "0.0.0.0:" + cfg.Port
	log.Printf("listening on %s; webhook=%s", addr, public)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func handleUpdate(bot *tgbotapi.BotAPI, solver *calc.Solver, token string, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		switch upd.Message.Command() {
		case "start":
			send(bot, cid, "Send a photo of a handwritten problem (math, physics, chemistry or science) and I will solve it. Commands: /health")
		case "health":
			send(bot, cid, "OK: webhook + Gemini")
		default:
			send(bot, cid, "Unknown command")
		}
		return
	}

	if len(upd.Message.Photo) == 0 {
		return
	}
	send(bot, cid, "Got the photo, working on it…")

	// Последний элемент — самое крупное превью.
	ph := upd.Message.Photo[len(upd.Message.Photo)-1]
	tf, err := bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		send(bot, cid, "Could not fetch the file: "+err.Error())
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", token, tf.FilePath)
	img, err := download(url)
	if err != nil {
		send(bot, cid, "Could not download the photo: "+err.Error())
		return
	}

	// Подпись к фото трактуем как предмет: "physics", "chemistry"...
	subject := strings.ToLower(strings.TrimSpace(upd.Message.Caption))

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()
	recs := solver.Solve(ctx, img, util.PickMIME("", "", img), nil, subject)

	send(bot, cid, formatRecords(recs))
}

func formatRecords(recs []answer.Record) string {
	if len(recs) == 0 {
		return "I could not read an answer out of that image. Try a clearer photo."
	}
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "%s = %v", rec.Expr(), rec.Result())
		if rec.Assign() {
			b.WriteString(" (assigned)")
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func send(bot *tgbotapi.BotAPI, chatID int64, text string) {
	_, _ = bot.Send(tgbotapi.NewMessage(chatID, text))
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

func shortHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}
