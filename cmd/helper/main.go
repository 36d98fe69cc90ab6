package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ruyatech/internal/client"
	"ruyatech/internal/config"
	"ruyatech/internal/moderation"
	"ruyatech/internal/utils/logger"
)

// Interactive moderation CLI against the backend, using a fixed bearer
// token from BACKEND_TOKEN. Handy for poking at staging without the
// dashboard.
func main() {
	var log = logger.New("helper")
	log.Info("Starting moderation helper CLI")

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		return
	}

	backend := client.New(client.Options{
		BaseURL:     cfg.Backend.BaseURL,
		Locale:      cfg.Backend.Locale,
		Credentials: client.StaticCredentials(os.Getenv("BACKEND_TOKEN")),
	})

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("Enter 'c' for counts, 'a' for an action, 'b' for a bulk action, or 'q' to quit: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)

		if choice == "q" {
			log.Info("Exiting helper CLI")
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		switch choice {
		case "c":
			printCounts(ctx, backend, log)
		case "a":
			entity, action, ids := readSelection(reader, false)
			if len(ids) == 1 {
				runBulk(ctx, backend, log, entity, action, ids)
			}
		case "b":
			entity, action, ids := readSelection(reader, true)
			if len(ids) > 0 {
				runBulk(ctx, backend, log, entity, action, ids)
			}
		default:
			log.Warn("Unknown choice %q", choice)
		}
		cancel()
	}
}

func printCounts(ctx context.Context, backend *client.Client, log *logger.Logger) {
	if ads, err := backend.Ads.List(ctx); err != nil {
		log.Error("Failed to fetch ads: %v", err)
	} else {
		log.Info("ads: %v", moderation.AdBuckets(ads).Counts())
	}
	if posts, err := backend.Posts.List(ctx); err != nil {
		log.Error("Failed to fetch posts: %v", err)
	} else {
		log.Info("posts: %v", moderation.PostBuckets(posts, "", true).Counts())
	}
	if members, err := backend.Members.List(ctx); err != nil {
		log.Error("Failed to fetch members: %v", err)
	} else {
		log.Info("members: %v", moderation.MemberBuckets(members).Counts())
	}
}

func readSelection(reader *bufio.Reader, bulk bool) (entity, action string, ids []string) {
	fmt.Print("Entity (ads/posts/members): ")
	entity, _ = reader.ReadString('\n')
	entity = strings.TrimSpace(entity)

	fmt.Print("Action (publish/unpublish/reject/approve/suspend/delete): ")
	action, _ = reader.ReadString('\n')
	action = strings.TrimSpace(action)

	if bulk {
		fmt.Print("Comma-separated ids: ")
	} else {
		fmt.Print("Id: ")
	}
	raw, _ := reader.ReadString('\n')
	for _, part := range strings.Split(strings.TrimSpace(raw), ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return entity, action, ids
}

func runBulk(ctx context.Context, backend *client.Client, log *logger.Logger, entity, action string, ids []string) {
	act, err := resolveAction(backend, entity, action)
	if err != nil {
		log.Error("Cannot run action: %v", err)
		return
	}
	result, err := moderation.Run(ctx, ids, act)
	if err != nil {
		log.Error("Stopped at %s: %v", err, result.FailedID)
		log.Info("Completed before the failure: %v", result.Completed)
		return
	}
	log.Success("Completed: %v", result.Completed)
}

func resolveAction(backend *client.Client, entity, action string) (moderation.Action, error) {
	switch entity {
	case "ads":
		return func(ctx context.Context, id string) error {
			ad, err := backend.Ads.Get(ctx, id)
			if err != nil {
				return err
			}
			switch action {
			case "publish":
				return backend.Ads.Publish(ctx, ad)
			case "unpublish":
				return backend.Ads.Unpublish(ctx, ad)
			case "reject":
				return backend.Ads.Reject(ctx, ad)
			case "delete":
				_, err := backend.Ads.Delete(ctx, id)
				return err
			}
			return fmt.Errorf("unknown ad action %q", action)
		}, nil
	case "posts":
		return func(ctx context.Context, id string) error {
			post, err := backend.Posts.Get(ctx, id)
			if err != nil {
				return err
			}
			switch action {
			case "publish":
				return backend.Posts.Publish(ctx, post)
			case "unpublish":
				return backend.Posts.Unpublish(ctx, post)
			case "reject":
				return backend.Posts.Reject(ctx, post)
			case "delete":
				_, err := backend.Posts.Delete(ctx, id)
				return err
			}
			return fmt.Errorf("unknown post action %q", action)
		}, nil
	case "members":
		return func(ctx context.Context, id string) error {
			member, err := backend.Members.Get(ctx, id)
			if err != nil {
				return err
			}
			switch action {
			case "approve":
				return backend.Members.Approve(ctx, member)
			case "suspend":
				return backend.Members.Suspend(ctx, member)
			case "reject":
				return backend.Members.Reject(ctx, member)
			case "delete":
				_, err := backend.Members.Delete(ctx, id)
				return err
			}
			return fmt.Errorf("unknown member action %q", action)
		}, nil
	}
	return nil, fmt.Errorf("unknown entity %q", entity)
}
