package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

type RepairLevelInput struct {
	Level *level.RawLevel `json:"level" jsonschema:"raw level layout with rooms, corridors and points of interest"`
}

type AssembleLevelInput struct {
	Level *level.RawLevel `json:"level" jsonschema:"raw level layout to repair and assemble"`
}

type PlaceObjectsInput struct {
	Level   *level.RawLevel    `json:"level" jsonschema:"raw level layout to place objects in"`
	Objects []placement.Object `json:"objects" jsonschema:"objects to place; only ready objects are considered"`
}

type RepairLevelOutput struct {
	Level    level.Level    `json:"level"`
	Issues   []repair.Issue `json:"issues"`
	Warnings int            `json:"warnings"`
}

type AssembleLevelOutput struct {
	Scene  scene.Scene    `json:"scene"`
	Issues []repair.Issue `json:"issues"`
}

type PlaceObjectsOutput struct {
	Placed  []placement.Placed  `json:"placed"`
	Skipped []placement.Skipped `json:"skipped"`
	Issues  []repair.Issue      `json:"issues"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "repair_level",
		Description: "Repair a raw level layout and report every correction made",
	}, s.handleRepairLevel)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "assemble_level",
		Description: "Repair a raw level layout and build its 3D scene geometry",
	}, s.handleAssembleLevel)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "place_objects",
		Description: "Repair a raw level layout and place characters and props in it",
	}, s.handlePlaceObjects)
}

func (s *Server) repair(raw *level.RawLevel) (*repair.Result, error) {
	if raw == nil {
		return nil, fmt.Errorf("level is required")
	}
	return repair.RepairWith(raw, s.opts.Repair)
}

func (s *Server) handleRepairLevel(ctx context.Context, req *sdk.CallToolRequest, input RepairLevelInput) (*sdk.CallToolResult, RepairLevelOutput, error) {
	res, err := s.repair(input.Level)
	if err != nil {
		return nil, RepairLevelOutput{}, err
	}
	return nil, RepairLevelOutput{
		Level:    res.Level,
		Issues:   nonNil(res.Issues),
		Warnings: len(repair.Warnings(res.Issues)),
	}, nil
}

func (s *Server) handleAssembleLevel(ctx context.Context, req *sdk.CallToolRequest, input AssembleLevelInput) (*sdk.CallToolResult, AssembleLevelOutput, error) {
	res, err := s.repair(input.Level)
	if err != nil {
		return nil, AssembleLevelOutput{}, err
	}
	return nil, AssembleLevelOutput{
		Scene:  scene.Assemble(res.Level, s.opts.Scene),
		Issues: nonNil(res.Issues),
	}, nil
}

func (s *Server) handlePlaceObjects(ctx context.Context, req *sdk.CallToolRequest, input PlaceObjectsInput) (*sdk.CallToolResult, PlaceObjectsOutput, error) {
	res, err := s.repair(input.Level)
	if err != nil {
		return nil, PlaceObjectsOutput{}, err
	}
	placed := placement.Place(res.Level, input.Objects, scene.TransformFor(res.Level), s.opts.Placement)
	return nil, PlaceObjectsOutput{
		Placed:  placed.Placed,
		Skipped: placed.Skipped,
		Issues:  nonNil(res.Issues),
	}, nil
}

func nonNil(issues []repair.Issue) []repair.Issue {
	if issues == nil {
		return []repair.Issue{}
	}
	return issues
}
