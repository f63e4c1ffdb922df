//coverage:ignore file

package testutil

import (
	"context"
	"strings"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// SetupMongoContainer starts a single node replica set so multi-document
// transactions are available, and returns a uri that connects straight to it
func SetupMongoContainer(ctx context.Context) (testcontainers.Container, string, error) {

	mongoC, err := mongodb.Run(ctx, "mongo:6.0", mongodb.WithReplicaSet("rs0"))
	if err != nil {
		return nil, "", err
	}

	uri, err := mongoC.ConnectionString(ctx)
	if err != nil {
		mongoC.Terminate(ctx)
		return nil, "", err
	}

	return mongoC, directConnection(uri), nil
}

func directConnection(uri string) string {
	if strings.Contains(uri, "directConnection=") {
		return uri
	}
	if strings.Contains(uri, "?") {
		return uri + "&directConnection=true"
	}
	return strings.TrimSuffix(uri, "/") + "/?directConnection=true"
}
