package notification

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMSender membungkus client Firebase Cloud Messaging. Kalau kredensial
// tidak tersedia, Kirim jadi no-op supaya server tetap jalan tanpa push.
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender menginisialisasi Firebase dari file service account.
// Path kosong berarti push dinonaktifkan.
func NewFCMSender(credentialsFile string) (*FCMSender, error) {
	if credentialsFile == "" {
		log.Println("FCM dinonaktifkan: GOOGLE_APPLICATION_CREDENTIALS tidak diset")
		return &FCMSender{}, nil
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(credentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("gagal inisialisasi Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil Messaging client: %w", err)
	}

	log.Println("Firebase Messaging siap")
	return &FCMSender{client: client}, nil
}

// Kirim mengirim satu push ke satu token perangkat
func (s *FCMSender) Kirim(token, judul, isi string, data map[string]string) error {
	if s.client == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Data:  data,
		Notification: &messaging.Notification{
			Title: judul,
			Body:  isi,
		},
	}

	_, err := s.client.Send(context.Background(), message)
	return err
}
