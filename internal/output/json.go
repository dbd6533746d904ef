package output

import (
	"encoding/json"

	"github.com/mehulj/portreap/pkg/model"
)

func ToJSON(infos []model.ListenerInfo) (string, error) {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
