package integrationtests

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"testing"

	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/require"
)

// Connect dials a loopback QUIC listener and returns both ends.
func Connect(t *testing.T) (server, client quic.Connection, cancel func()) {
	t.Helper()
	tlsConfig, err := GenerateTLSConfig()
	require.NoError(t, err)
	listener, err := quic.ListenAddr("localhost:0", tlsConfig, &quic.Config{
		EnableDatagrams: true,
	})
	require.NoError(t, err)
	addr := fmt.Sprintf("localhost:%v", listener.Addr().(*net.UDPAddr).Port)

	clientConn, err := quic.DialAddr(context.Background(), addr, &tls.Config{
		InsecureSkipVerify: true,
		NextProtos:         []string{"moq-00"},
	}, &quic.Config{
		EnableDatagrams: true,
	})
	require.NoError(t, err)

	serverConn, err := listener.Accept(context.Background())
	require.NoError(t, err)

	return serverConn, clientConn, func() {
		_ = clientConn.CloseWithError(0, "")
		_ = serverConn.CloseWithError(0, "")
		_ = listener.Close()
	}
}

// GenerateTLSConfig sets up a bare-bones TLS config for the server.
func GenerateTLSConfig() (*tls.Config, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	template := x509.Certificate{SerialNumber: big.NewInt(1)}
	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})

	tlsCert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		NextProtos:   []string{"moq-00", "h3"},
	}, nil
}
