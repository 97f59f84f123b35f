// Package visitor defines the events a traversal of a run emits and the
// Walker that emits them.
package visitor

import (
	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/status"
)

// Visitor receives the events of one traversal, in nesting order:
//
//	BeforeFeatures
//	  BeforeFeature, FeatureName
//	    BeforeBackground, ScenarioName, BeforeSteps, step*, AfterSteps, AfterBackground
//	    BeforeFeatureElement, ScenarioName, BeforeSteps, step*, AfterSteps, AfterFeatureElement
//	    BeforeOutline, ScenarioName, BeforeSteps, step*, AfterSteps,
//	      (ExamplesName, BeforeOutlineTable, header, row*, AfterOutlineTable)*
//	    AfterOutline
//	  AfterFeature
//	AfterFeatures
//
// A step is BeforeStep, StepName, an optional multiline argument, then
// AfterStepResult (only for steps that ran) and AfterStep. An outline data
// row is bracketed by BeforeFeatureElement and AfterFeatureElement.
// Exception may arrive before any step or element boundary.
type Visitor interface {
	BeforeFeatures(features *ast.Features)
	AfterFeatures(features *ast.Features)

	BeforeFeature(feature *ast.Feature)
	FeatureName(keyword, name, description string, tags []string)
	AfterFeature(feature *ast.Feature)

	BeforeBackground(background *ast.Background)
	AfterBackground(background *ast.Background)

	BeforeFeatureElement(element ast.FeatureElement)
	AfterFeatureElement(element ast.FeatureElement)

	BeforeOutline(outline *ast.Outline)
	AfterOutline(outline *ast.Outline)

	ScenarioName(keyword, name string, tags []string)

	BeforeSteps(steps []*ast.Step)
	AfterSteps(steps []*ast.Step)

	BeforeStep(step *ast.Step)
	StepName(keyword, text string, st status.Kind)
	BeforeMultilineArg(arg ast.MultilineArg)
	DocString(doc *ast.DocString)
	AfterMultilineArg(arg ast.MultilineArg)
	AfterStepResult(result *ast.StepResult)
	AfterStep(step *ast.Step)

	ExamplesName(keyword, name string)
	BeforeOutlineTable(examples *ast.Examples)
	AfterOutlineTable(examples *ast.Examples)

	BeforeTableRow(row []string)
	// TableCellValue passes status.None when the cell has no status of its
	// own; outline header cells arrive as status.SkippedParam.
	TableCellValue(value string, st status.Kind)
	AfterTableRow(row []string)

	// Exception signals a failure that did not come with a step result of
	// its own, or precedes the failing step result.
	Exception(err error, st status.Kind)
}

// Base ignores every event. Embed it to implement only some of them.
type Base struct{}

var _ Visitor = Base{}

func (Base) BeforeFeatures(*ast.Features) {}
func (Base) AfterFeatures(*ast.Features) {}
func (Base) BeforeFeature(*ast.Feature) {}
func (Base) FeatureName(string, string, string, []string) {}
func (Base) AfterFeature(*ast.Feature) {}
func (Base) BeforeBackground(*ast.Background) {}
func (Base) AfterBackground(*ast.Background) {}
func (Base) BeforeFeatureElement(ast.FeatureElement) {}
func (Base) AfterFeatureElement(ast.FeatureElement) {}
func (Base) BeforeOutline(*ast.Outline) {}
func (Base) AfterOutline(*ast.Outline) {}
func (Base) ScenarioName(string, string, []string) {}
func (Base) BeforeSteps([]*ast.Step) {}
func (Base) AfterSteps([]*ast.Step) {}
func (Base) BeforeStep(*ast.Step) {}
func (Base) StepName(string, string, status.Kind) {}
func (Base) BeforeMultilineArg(ast.MultilineArg) {}
func (Base) DocString(*ast.DocString) {}
func (Base) AfterMultilineArg(ast.MultilineArg) {}
func (Base) AfterStepResult(*ast.StepResult) {}
func (Base) AfterStep(*ast.Step) {}
func (Base) ExamplesName(string, string) {}
func (Base) BeforeOutlineTable(*ast.Examples) {}
func (Base) AfterOutlineTable(*ast.Examples) {}
func (Base) BeforeTableRow([]string) {}
func (Base) TableCellValue(string, status.Kind) {}
func (Base) AfterTableRow([]string) {}
func (Base) Exception(error, status.Kind) {}
