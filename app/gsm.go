package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
)

type SecretManagerClient interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

var newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
	return secretmanager.NewClient(ctx)
}

func accessSecretVersion(client SecretManagerClient, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectID, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

// readSecretsFromGSM fills the signer mnemonic from Google Secret Manager when no signer
// is configured locally.
func readSecretsFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.Signer.Mnemonic != "" || Config.Signer.GcpKmsKeyName != "" {
		log.Debug("[GSM] Signer already configured, skipping")
		return
	}

	if Config.GoogleSecretManager.ProjectID == "" {
		log.Fatalf("[GSM] ProjectID is empty")
	}
	if Config.GoogleSecretManager.MnemonicSecretName == "" {
		log.Fatalf("[GSM] Mnemonic secret name is empty")
	}

	client, err := newSecretManagerClient(context.Background())
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	log.Debug("[GSM] Reading mnemonic")
	Config.Signer.Mnemonic, err = accessSecretVersion(client, Config.GoogleSecretManager.MnemonicSecretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access mnemonic: %v", err)
	}
	log.Info("[GSM] Successfully read mnemonic")
}
