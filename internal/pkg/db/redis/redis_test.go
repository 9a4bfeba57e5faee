package redis

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"testing"
	"time"

	"documentstore/internal/pkg/config"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateSelfSignedCert() (certPEM, keyPEM []byte, err error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, err
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"Test Corp"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return nil, nil, err
	}

	certOut := &bytes.Buffer{}
	if err := pem.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: derBytes}); err != nil {
		return nil, nil, err
	}

	keyOut := &bytes.Buffer{}
	if err := pem.Encode(keyOut, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)}); err != nil {
		return nil, nil, err
	}

	return certOut.Bytes(), keyOut.Bytes(), nil
}

func TestBuildTLSConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("should return default config when no cert content is provided", func(t *testing.T) {
		tlsConfig, err := buildTLSConfig(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, tlsConfig)
		assert.Nil(t, tlsConfig.RootCAs)
		assert.Nil(t, tlsConfig.Certificates)
	})

	t.Run("should load CA certificate from content", func(t *testing.T) {
		caCert, _, err := generateSelfSignedCert()
		require.NoError(t, err)

		tlsConfig, err := buildTLSConfig(ctx, string(caCert))
		require.NoError(t, err)
		assert.NotNil(t, tlsConfig.RootCAs)
	})

	t.Run("should load client key pair from combined content", func(t *testing.T) {
		caCert, key, err := generateSelfSignedCert()
		require.NoError(t, err)

		combined := append(caCert, key...)
		tlsConfig, err := buildTLSConfig(ctx, string(combined))
		require.NoError(t, err)
		assert.NotEmpty(t, tlsConfig.Certificates)
	})

	t.Run("should fail on garbage content", func(t *testing.T) {
		_, err := buildTLSConfig(ctx, "not pem at all")
		assert.Error(t, err)
	})
}

func TestConnectToRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("successful connection", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectPing().SetVal("PONG")

		cfg := config.RedisConfig{Addr: "localhost:6379"}
		client, err := ConnectToRedis(ctx, cfg, func(opt *redis.Options) *redis.Client {
			return db
		})

		require.NoError(t, err)
		assert.Equal(t, db, client.Client)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping failure", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectPing().SetErr(redis.ErrClosed)

		cfg := config.RedisConfig{Addr: "localhost:6379"}
		client, err := ConnectToRedis(ctx, cfg, func(opt *redis.Options) *redis.Client {
			return db
		})

		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("TLS config failure", func(t *testing.T) {
		cfg := config.RedisConfig{
			Addr:        "localhost:6379",
			EnableTLS:   true,
			CertContent: "garbage",
		}

		client, err := ConnectToRedis(ctx, cfg, nil)

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
