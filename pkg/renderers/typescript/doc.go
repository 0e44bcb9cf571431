// Package typescript renders models as TypeScript interface declarations.
//
// Every supported property maps onto its TypeScript primitive; anything else
// becomes unknown. Members are emitted in model order, tab indented.
package typescript
