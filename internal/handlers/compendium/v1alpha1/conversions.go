package v1alpha1

import (
	"encoding/json"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
)

type renderEntityResponse struct {
	Entity     *ruleset.Entity `json:"entity"`
	Fragment   *render.Node    `json:"fragment"`
	IsDisabled bool            `json:"is_disabled"`
	HasOverlay bool            `json:"has_overlay"`
}

type renderPayloadResponse struct {
	Fragment *render.Node `json:"fragment"`
}

type listEntitiesResponse struct {
	Entities []*ruleset.Entity `json:"entities"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	PerPage  int               `json:"per_page"`
}

type rollHitPointsResponse struct {
	Notation string `json:"notation"`
	Rolls    []int  `json:"rolls"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
}

// toStruct converts a JSON-tagged response into a Struct
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to convert response")
	}
	return out, nil
}

// entityData reads the payload of a RenderPayload request.
// entity_data_json keeps member order; entity_data does not.
func entityData(req *structpb.Struct) (*jsonv.Object, error) {
	if raw := stringField(req, "entity_data_json"); raw != "" {
		data, err := jsonv.ParseObject([]byte(raw))
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "entity_data_json must be a JSON object")
		}
		return data, nil
	}

	st := req.GetFields()["entity_data"].GetStructValue()
	if st == nil {
		return nil, nil
	}
	data, _ := jsonv.AsObject(jsonv.FromGo(st.AsMap()))
	return data, nil
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

// intField truncates the number; anything else reads as 0
func intField(req *structpb.Struct, name string) int {
	n := req.GetFields()[name].GetNumberValue()
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}
