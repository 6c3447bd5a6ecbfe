package whatsapp

import (
	"context"
	"fmt"
	"time"

	"DespachoJuridico/database/postgres"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

type IWhatsappClient interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
	SendImage(ctx context.Context, phoneNumber string, imageData []byte, mimeType string, caption string) error
	SendTyping(phoneNumber string, typing bool) error
	DownloadImage(msg *waProto.ImageMessage) ([]byte, string, error)
	AddMessageHandler(handler func(evt *events.Message))
	Disconnect() error
	IsConnected() bool
}

type whatsappClient struct {
	client *whatsmeow.Client
}

func New() (IWhatsappClient, error) {
	dsn := postgres.FormatDSN()

	dbLog := waLog.Stdout("Database", "INFO", true)
	container, err := sqlstore.New(context.Background(), "postgres", dsn, dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get device store: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", "INFO", true))

	connected := make(chan bool)
	client.AddEventHandler(func(evt interface{}) {
		if _, ok := evt.(*events.Connected); ok {
			connected <- true
		}
	})

	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(context.Background())
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					fmt.Println("QR Code:", evt.Code)
				}
			}
		}()
	} else {
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
	}

	select {
	case <-connected:
		fmt.Println("WhatsApp connected")
	case <-time.After(60 * time.Second):
		return nil, fmt.Errorf("connection timeout")
	}

	return &whatsappClient{
		client: client,
	}, nil
}

func (w *whatsappClient) SendMessage(ctx context.Context, phoneNumber, message string) error {
	jid := types.NewJID(phoneNumber, types.DefaultUserServer)

	waMsg := &waProto.Message{
		Conversation: proto.String(message),
	}

	_, err := w.client.SendMessage(ctx, jid, waMsg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (w *whatsappClient) SendImage(ctx context.Context, phoneNumber string, imageData []byte, mimeType string, caption string) error {
	jid := types.NewJID(phoneNumber, types.DefaultUserServer)

	uploaded, err := w.client.Upload(ctx, imageData, whatsmeow.MediaImage)
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	waMsg := &waProto.Message{
		ImageMessage: &waProto.ImageMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(mimeType),
			URL:           proto.String(uploaded.URL),
			DirectPath:    proto.String(uploaded.DirectPath),
			MediaKey:      uploaded.MediaKey,
			FileEncSHA256: uploaded.FileEncSHA256,
			FileSHA256:    uploaded.FileSHA256,
			FileLength:    proto.Uint64(uploaded.FileLength),
		},
	}

	_, err = w.client.SendMessage(ctx, jid, waMsg)
	if err != nil {
		return fmt.Errorf("failed to send image: %w", err)
	}

	return nil
}

func (w *whatsappClient) SendTyping(phoneNumber string, typing bool) error {
	jid := types.NewJID(phoneNumber, types.DefaultUserServer)

	state := types.ChatPresencePaused
	if typing {
		state = types.ChatPresenceComposing
	}

	return w.client.SendChatPresence(jid, state, types.ChatPresenceMediaText)
}

func (w *whatsappClient) DownloadImage(msg *waProto.ImageMessage) ([]byte, string, error) {
	if msg == nil {
		return nil, "", fmt.Errorf("no image message")
	}

	data, err := w.client.Download(context.Background(), msg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}

	mimeType := msg.GetMimetype()
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return data, mimeType, nil
}

func (w *whatsappClient) AddMessageHandler(handler func(evt *events.Message)) {
	w.client.AddEventHandler(func(evt interface{}) {
		if msg, ok := evt.(*events.Message); ok {
			handler(msg)
		}
	})
}

func (w *whatsappClient) Disconnect() error {
	w.client.Disconnect()
	return nil
}

func (w *whatsappClient) IsConnected() bool {
	return w.client.IsConnected()
}
