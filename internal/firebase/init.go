package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"io.winapps.portfolio/internal/config"
)

// InitFirebase initializes and returns a Firebase app instance
func InitFirebase(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	appConfig := &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}

	var opts []option.ClientOption
	if cfg.ServiceAccountPath != "" {
		// Initialize with service account file
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}
	// Otherwise fall back to default credentials (useful for Google Cloud deployment)

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	return app, nil
}

// GetAuthClient returns a Firebase Auth client from the app
func GetAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	return app.Auth(ctx)
}

// GetDatabaseClient returns a Realtime Database client bound to the
// configured database URL
func GetDatabaseClient(ctx context.Context, app *firebase.App) (*db.Client, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Realtime Database client: %w", err)
	}
	return client, nil
}

// GetMessagingClient returns a Cloud Messaging client from the app
func GetMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	return app.Messaging(ctx)
}

// GetFirestoreClient returns a Firestore client for the document-store read path
func GetFirestoreClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return client, nil
}
