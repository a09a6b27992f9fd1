package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID    string   `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	Name      string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	EmailID   string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	Bio       string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	AvatarKey string   `dynamodbav:"avatarKey,omitempty" json:"avatarKey,omitempty"` // S3 object key
	Interests []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"` // Topics the user wants to learn
	Expertise []string `dynamodbav:"expertise,omitempty" json:"expertise,omitempty"` // Topics the user can teach
	CreatedAt string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HasTags reports whether the profile carries at least one interest or expertise tag
func (p *UserProfile) HasTags() bool {
	return p != nil && (len(p.Interests) > 0 || len(p.Expertise) > 0)
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "Users"
