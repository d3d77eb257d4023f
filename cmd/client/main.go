package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/avdeenko/biograph/internal/adapter"
	"github.com/avdeenko/biograph/internal/cache"
	"github.com/avdeenko/biograph/internal/config"
	"github.com/avdeenko/biograph/internal/document"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/replica"
	"github.com/avdeenko/biograph/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// The watch client opens a document, prints every element event the bus
// publishes, and keeps the replica synchronized with the hub until
// interrupted.
func main() {
	printBuildInfo()

	log := logger.New("biograph-client")
	cfg, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Client.User == "" || cfg.Client.DocumentID == "" {
		log.Fatal().Msg("CLIENT_USER and CLIENT_DOCUMENT_ID must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hubClient := adapter.New(adapter.Config{
		BaseURL:    cfg.Client.ServerURL,
		DocumentID: cfg.Client.DocumentID,
		Timeout:    cfg.Hub.RequestTimeout,
	})

	session, err := hubClient.OpenSession(ctx, cfg.Client.User)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening session")
	}
	log.Info().Str("user", session.User).Msg("session opened")

	state, err := hubClient.FetchDocument(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error fetching document")
	}

	doc := replica.NewDoc(log)
	if err = doc.ApplyRemote(ctx, state); err != nil {
		log.Fatal().Err(err).Msg("error seeding document state")
	}

	elements, err := cache.New(log, hubClient)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating element cache")
	}

	sync, err := replica.Dial(ctx, log, doc, replica.SessionConfig{
		URL:   syncURL(cfg.Client.ServerURL, cfg.Client.DocumentID),
		Token: session.Token,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error dialing sync channel")
	}

	d, err := document.Open(ctx, log, doc, elements, document.WithSession(sync))
	if err != nil {
		log.Fatal().Err(err).Msg("error opening document")
	}
	defer d.Close()

	watchEvents(d, log)
	log.Info().
		Str("doc", cfg.Client.DocumentID).
		Str("name", d.Name()).
		Int("elements", d.Set().Size()).
		Msg("document open")

	resyncer := replica.NewResyncer(sync)
	resyncer.Start(ctx, cfg.Client.ResyncInterval)
	defer resyncer.Stop()

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// watchEvents logs every event topic the document publishes.
func watchEvents(d *document.Document, log *logger.Logger) {
	topics := []string{
		models.EventAdd, models.EventRemove, models.EventRegroup,
		models.EventRename, models.EventOrganismAdd, models.EventLoadElements,
	}
	for _, topic := range topics {
		topic := topic
		d.Events().Subscribe(topic, func(ev models.Event) {
			entry := log.Info().Str("event", topic)
			if ev.Element != nil {
				entry = entry.Str("element", string(ev.Element.ElementID()))
			}
			if ev.Group != nil {
				entry = entry.Str("group", *ev.Group)
			}
			if ev.Name != "" {
				entry = entry.Str("name", ev.Name)
			}
			if ev.Organism != "" {
				entry = entry.Str("organism", ev.Organism)
			}
			entry.Send()
		})
	}
}

func syncURL(serverURL, docID string) string {
	ws := strings.Replace(serverURL, "http", "ws", 1)
	return fmt.Sprintf("%s/api/documents/%s/sync", strings.TrimRight(ws, "/"), docID)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
