package models

// HealthFile records an object uploaded to S3 on behalf of a user. URL is
// a time-limited presigned link; ObjectKey is kept so a fresh link could
// be minted without re-uploading.
type HealthFile struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	URL       string `gorm:"not null"`
	ObjectKey string `gorm:"not null"`
	UserID    uint   `gorm:"index;not null"`
}

func (f *HealthFile) SimpleSerialize() map[string]interface{} {
	return map[string]interface{}{
		"id":   f.ID,
		"name": f.Name,
		"url":  f.URL,
	}
}

func (f *HealthFile) Serialize() map[string]interface{} {
	out := f.SimpleSerialize()
	out["user_id"] = f.UserID
	return out
}
