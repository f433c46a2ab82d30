// Package pipeline provides a framework for executing report steps in sequence.
//
// Every inventory file goes through the same stages: read the bytes, parse
// the document, aggregate the statistics and render the report. Each stage
// is implemented as a Step that receives the current Job and fills in its
// part of it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It provides consistent error handling and logging across steps
// 2. It supports cancellation via context between stages
// 3. Tests can run a partial pipeline and inspect intermediate results
//
// The pipeline supports both individual files and batch processing with
// concurrency control using errgroup.
package pipeline
