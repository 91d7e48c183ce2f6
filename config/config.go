package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true
	SESSION_KEY  = "this is a long key" // TODO: require this to be set in production

	MYSQL_DSN   = ""            // MySQL will be used if this is set
	SQLITE_FILE = "postline.db" // SQLite will be used if MYSQL_DSN is not configured

	// Both the web pages and the API slice post lists into pages of this size
	POSTS_PER_PAGE = 10
	// How long the rendered index page is served from cache
	INDEX_CACHE_SECONDS = 20

	MEDIA_DIR = "media" // Post images are stored under <MEDIA_DIR>/posts/

	// If S3_BUCKET is set, uploaded images go to S3 instead of local disk
	S3_BUCKET   = ""
	S3_REGION   = "us-east-1"
	S3_ENDPOINT = "" // Optional, for S3-compatible stores
	S3_KEY      = ""
	S3_SECRET   = ""
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_KEY", &S3_KEY)
	readEnvString("S3_SECRET", &S3_SECRET)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
