package shared

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"strings"
)

func HttpClient() *http.Client {
	ignoreSSL := os.Getenv("IGNORE_SSL_CERTS")

	if strings.ToLower(ignoreSSL) == "true" {
		log.Println("Warning: SSL certificate verification disabled")
		tr := &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
		return &http.Client{Transport: tr}
	}

	return &http.Client{}
}
