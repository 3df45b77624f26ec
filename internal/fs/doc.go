// Package fs provides the filesystem abstraction behind blobstore.LocalStore.
//
//   - [FileSystem]: the operations LocalStore performs (open, rename, remove,
//     mkdir, readdir).
//   - [LocalFS]: production implementation using the os package.
//   - [FaultyFS]: test wrapper that injects write, sync and close failures.
//
// Operations take no context.Context; local syscalls are not interruptible.
package fs
