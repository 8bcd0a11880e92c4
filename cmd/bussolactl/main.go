package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"go.uber.org/zap"

	"bussola/internal/cli"
	"bussola/internal/config"
	"bussola/pkg/translator"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  os.Getenv("TRANSLATION_DIR"),
		SupportedLanguages: []string{translator.LanguagePtBR, translator.LanguageEn},
	})

	if err := cli.NewRootCmd(config.LoadConfig).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
