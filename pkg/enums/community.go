package enums

import "fmt"

// PostType classifies community posts.
type PostType string

const (
	PostTypeSuccessStory PostType = "success_story"
	PostTypeTip          PostType = "tip"
	PostTypeGeneral      PostType = "general"
	PostTypeQuestion     PostType = "question"
	PostTypeAnnouncement PostType = "announcement"
)

var validPostTypes = []PostType{
	PostTypeSuccessStory,
	PostTypeTip,
	PostTypeGeneral,
	PostTypeQuestion,
	PostTypeAnnouncement,
}

func (p PostType) IsValid() bool {
	for _, candidate := range validPostTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParsePostType(value string) (PostType, error) {
	for _, candidate := range validPostTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid post type %q", value)
}
