package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/forkrun/pkg/repository/firestore"
	"github.com/secmon-lab/forkrun/pkg/repository/testhelper"
	"github.com/secmon-lab/forkrun/pkg/utils/testutil"
)

func TestFirestoreForkRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo := gt.R1(firestore.New(ctx, projectID, databaseID)).NoError(t)

	testhelper.TestAll(t, repo)
}
