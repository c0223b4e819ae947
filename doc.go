// Package rowan is the retained-mode scene element core of a 2D rendering
// engine for [Ebitengine].
//
// Rowan provides the base [Element] every drawable or group derives from:
// identity, transform and event capabilities, clip path and attached text
// label ownership, dirty-flag redraw signaling, and property-target
// animation. Painting itself is left to the host: rowan tracks what changed
// and when, a [Painter] decides how it looks.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := rowan.NewStage()
//	// ... add elements ...
//	rowan.Run(stage, rowan.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	}, myPainter)
//
// For full control, implement [ebiten.Game] yourself and call [Stage.Update]
// and [Stage.Flush] directly.
//
// # Scene graph
//
// Elements form a tree of [Group] containers rooted at [Stage.Root].
// Adding a node to an attached group joins it (and its animators, clip path,
// and text label) to the stage; removing it detaches them again.
//
//	box := rowan.NewElement("box", rowan.Props{
//		"position": []float64{10, 20},
//		"bounds":   rowan.Rect{Width: 80, Height: 40},
//	})
//	stage.Add(box)
//
// # Animation
//
// [Element.AnimateTo] takes a partial target state and synthesizes one
// animator per property bundle, driven by the stage's scheduler:
//
//	box.AnimateTo(rowan.Props{
//		"position": []float64{100, 100},
//		"style":    rowan.Props{"opacity": 0.5},
//	}, &rowan.AnimateOptions{
//		Duration: time.Second,
//		Easing:   ease.OutQuad,
//	})
//
// Interpolation is built on [gween]; any ease.TweenFunc works as a curve.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package rowan
