package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dreamscene/internal/env"
	"dreamscene/internal/llm"
	"dreamscene/internal/logger"
	"dreamscene/internal/server"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	staticDir := flag.String("static", "web", "directory served at / (empty to disable)")
	model := flag.String("model", llm.DefaultModel, "default LLM model")
	flag.Parse()

	_ = env.Load(".env")
	log := logger.New()

	openAIKey, groqKey := env.APIKeys()
	var client llm.Client
	switch {
	case openAIKey != "" && groqKey != "":
		client = &llm.Fallback{Primary: llm.NewOpenAI(openAIKey), Secondary: llm.NewGroq(groqKey)}
	case openAIKey != "":
		client = llm.NewOpenAI(openAIKey)
	case groqKey != "":
		client = llm.NewGroq(groqKey)
	default:
		fmt.Fprintln(os.Stderr, "set OPENAI_API_KEY or GROQ_API_KEY in .env")
		os.Exit(1)
	}

	srv := server.New(*addr, *staticDir, client, *model, log)
	srv.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Infof("shutting down")
	srv.Stop()
}
