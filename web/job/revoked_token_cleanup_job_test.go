package job

import (
	"os"
	"testing"
	"time"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup() {
	logger.InitLogger(logging.DEBUG)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestRevokedTokenCleanup(t *testing.T) {
	setup()
	defer teardown()

	db := database.GetDB()
	expired := &model.RevokedToken{TokenId: "expired", ExpiresAt: time.Now().Add(-time.Hour)}
	live := &model.RevokedToken{TokenId: "live", ExpiresAt: time.Now().Add(time.Hour)}
	assert.NoError(t, db.Create(expired).Error)
	assert.NoError(t, db.Create(live).Error)

	NewRevokedTokenCleanupJob().Run()

	var remaining []model.RevokedToken
	assert.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "live", remaining[0].TokenId)
}
